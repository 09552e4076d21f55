package upload

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/glyphlayout"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Upload errors.
var (
	// ErrNilDevice is returned when no HAL device is supplied.
	ErrNilDevice = errors.New("upload: device is nil")

	// ErrNilQueue is returned when no HAL queue is supplied.
	ErrNilQueue = errors.New("upload: queue is nil")

	// ErrNilBuffer is returned when writing into a nil buffer.
	ErrNilBuffer = errors.New("upload: buffer is nil")

	// ErrUnknownBuffer is returned when writing into a buffer this Uploader
	// did not create or has already destroyed.
	ErrUnknownBuffer = errors.New("upload: buffer not created by this uploader")

	// ErrEmptyData is returned when there is nothing to upload.
	ErrEmptyData = errors.New("upload: no data to upload")

	// ErrUnaligned is returned when a write offset or size is not a multiple
	// of 4 bytes, which WebGPU requires for buffer writes.
	ErrUnaligned = errors.New("upload: size or offset not 4-byte aligned")

	// ErrBufferTooLarge is returned when data exceeds Config.MaxBufferSize.
	ErrBufferTooLarge = errors.New("upload: buffer too large")

	// ErrOutOfBounds is returned when a write extends past the end of the
	// target buffer.
	ErrOutOfBounds = errors.New("upload: write past end of buffer")

	// ErrNoHALProvider is returned by FromProvider when the provider does
	// not expose HAL device and queue.
	ErrNoHALProvider = errors.New("upload: provider does not expose HAL types")
)

// writeAlignment is the WebGPU COPY_BUFFER_ALIGNMENT.
const writeAlignment = 4

// Marshaler is implemented by every GPU record (glyph.Vertex,
// glyph.Uniforms, textmesh.Vertex).
type Marshaler interface {
	Marshal() []byte
}

// Config holds upload limits.
type Config struct {
	// MaxBufferSize is the largest buffer Uploader will create, in bytes.
	// Default: 64 MiB
	MaxBufferSize uint64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxBufferSize: 64 << 20,
	}
}

// Uploader creates GPU buffers from encoded records and rewrites their
// contents. It remembers the size of every buffer it created so writes can
// be bounds-checked. Safe for concurrent use to the extent the HAL queue is.
type Uploader struct {
	device hal.Device
	queue  hal.Queue
	config Config

	mu    sync.Mutex
	sizes map[hal.Buffer]uint64
}

// New creates an Uploader for the given device and queue. Zero config
// fields are replaced by defaults.
func New(device hal.Device, queue hal.Queue, config Config) (*Uploader, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	if config.MaxBufferSize == 0 {
		config.MaxBufferSize = DefaultConfig().MaxBufferSize
	}
	return &Uploader{
		device: device,
		queue:  queue,
		config: config,
		sizes:  make(map[hal.Buffer]uint64),
	}, nil
}

// FromProvider creates an Uploader sharing the device of an external
// gpucontext provider. The provider must also implement
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
func FromProvider(provider gpucontext.DeviceProvider, config Config) (*Uploader, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}
	return New(device, queue, config)
}

// Config returns the uploader configuration.
func (u *Uploader) Config() Config {
	return u.config
}

// CreateBuffer creates a buffer with the given usage (plus CopyDst) and
// writes data into it unchanged. The buffer is len(data) bytes rounded up to
// a multiple of 4; the padding bytes are zero.
func (u *Uploader) CreateBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	if len(data) == 0 {
		return nil, u.reject(label, ErrEmptyData)
	}
	data = padToAlignment(data)
	size := uint64(len(data))
	if size > u.config.MaxBufferSize {
		return nil, u.reject(label, fmt.Errorf("%w: %d bytes exceeds max %d",
			ErrBufferTooLarge, size, u.config.MaxBufferSize))
	}

	buf, err := u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := u.queue.WriteBuffer(buf, 0, data); err != nil {
		u.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("write %s: %w", label, err)
	}

	u.mu.Lock()
	u.sizes[buf] = size
	u.mu.Unlock()

	glyphlayout.Logger().Debug("upload: buffer created",
		"label", label, "size", size)
	return buf, nil
}

// Vertices uploads a contiguous vertex buffer, as produced by
// glyph.EncodeVertices or textmesh.EncodeVertices.
func (u *Uploader) Vertices(label string, data []byte) (hal.Buffer, error) {
	return u.CreateBuffer(label, data, gputypes.BufferUsageVertex)
}

// Indices uploads an index buffer, as produced by textmesh.EncodeIndices.
// An odd number of uint16 indices is zero-padded to a 4-byte boundary; the
// draw call's index count, not the buffer size, bounds what is read.
func (u *Uploader) Indices(label string, data []byte) (hal.Buffer, error) {
	return u.CreateBuffer(label, data, gputypes.BufferUsageIndex)
}

// Uniforms uploads a single uniform block.
func (u *Uploader) Uniforms(label string, m Marshaler) (hal.Buffer, error) {
	return u.CreateBuffer(label, m.Marshal(), gputypes.BufferUsageUniform)
}

// BufferSize returns the size in bytes of a buffer created by this Uploader.
func (u *Uploader) BufferSize(buf hal.Buffer) (uint64, bool) {
	if buf == nil {
		return 0, false
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	size, ok := u.sizes[buf]
	return size, ok
}

// Write overwrites the bytes of buf starting at offset with the encoding
// of m. buf must have been created by this Uploader and the encoding must
// fit inside it.
func (u *Uploader) Write(buf hal.Buffer, offset uint64, m Marshaler) error {
	if buf == nil {
		return ErrNilBuffer
	}
	size, ok := u.BufferSize(buf)
	if !ok {
		return u.reject("write", ErrUnknownBuffer)
	}

	data := m.Marshal()
	n := uint64(len(data))
	switch {
	case n == 0:
		return u.reject("write", ErrEmptyData)
	case n%writeAlignment != 0 || offset%writeAlignment != 0:
		return u.reject("write", fmt.Errorf("%w: offset %d, size %d", ErrUnaligned, offset, n))
	case offset > size || n > size-offset:
		return u.reject("write", fmt.Errorf("%w: %d bytes at offset %d, buffer is %d",
			ErrOutOfBounds, n, offset, size))
	}

	if err := u.queue.WriteBuffer(buf, offset, data); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	glyphlayout.Logger().Debug("upload: buffer written",
		"offset", offset, "size", n)
	return nil
}

// Destroy releases a buffer created by this Uploader. Nil is ignored.
func (u *Uploader) Destroy(buf hal.Buffer) {
	if buf == nil {
		return
	}
	u.mu.Lock()
	delete(u.sizes, buf)
	u.mu.Unlock()
	u.device.DestroyBuffer(buf)
}

func (u *Uploader) reject(label string, err error) error {
	glyphlayout.Logger().Warn("upload: rejected", "label", label, "err", err)
	return fmt.Errorf("%s: %w", label, err)
}

// padToAlignment returns data extended with zero bytes to a multiple of
// writeAlignment. The caller's slice is never modified.
func padToAlignment(data []byte) []byte {
	rem := len(data) % writeAlignment
	if rem == 0 {
		return data
	}
	padded := make([]byte, len(data)+writeAlignment-rem)
	copy(padded, data)
	return padded
}
