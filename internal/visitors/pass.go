package visitors

import "orfscan-core/orf"

// PassThrough returns the hit unchanged.
type PassThrough struct{}

func (PassThrough) Visit(h orf.Hit) (keep bool, out orf.Hit, err error) {
	return true, h, nil
}
