package recording

import "image"

// ResourcePool stores images referenced by recording commands.
// Images are stored by reference: an image handed to a Recorder must not be
// mutated while the recording is alive.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	images []image.Image
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		images: make([]image.Image, 0, 4),
	}
}

// AddImage adds an image to the pool and returns its reference.
// A nil image yields an invalid reference.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	if img == nil {
		return ImageRef(InvalidRef)
	}
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if !ref.IsValid() || int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}
