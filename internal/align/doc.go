// Package align drives the contrastive alignment sweep.
//
// A [Driver] moves every item that is present in both the image and the text
// space linearly from its original position toward the midpoint of the two
// originals. For steps = N it produces N+1 ordered [Snapshot] values, step 0
// being the untouched input and step N the fully aligned state.
//
// # Example
//
//	d := align.New()
//	res, err := d.Run(ctx, image, text, 100, func(s align.Snapshot) error {
//		return renderer.WriteFrame(dir, s)
//	})
//
// Items present in only one space are carried through unchanged.
package align
