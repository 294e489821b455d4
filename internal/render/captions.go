package render

import "fmt"

// Caption is the one-line explanation under a 2D frame.
func Caption(step, steps int) string {
	switch {
	case step == steps:
		return "Spaces aligned! Same concepts now occupy the same positions"
	case step == 0:
		return "Starting with misaligned spaces: similar concepts are in different positions"
	case step < steps/4:
		return "Beginning alignment through contrastive learning..."
	case step < steps/2:
		return "Gradually aligning spaces through contrastive learning..."
	case step < 3*steps/4:
		return "Similar concepts are being pulled together across spaces"
	default:
		return "Spaces nearing perfect alignment"
	}
}

// Stage returns the title and explanation for a 3D frame at the given
// progress in [0,1].
func Stage(progress float64) (string, string) {
	switch {
	case progress <= 0:
		return "Initial Misaligned Embedding Spaces", "Starting with separate embedding spaces for images and text"
	case progress < 0.25:
		return "Beginning Contrastive Learning Alignment", "Starting to align corresponding representations"
	case progress < 0.5:
		return "Contrastive Learning Alignment in Progress", "Corresponding points moving toward shared space"
	case progress < 0.75:
		return "Advanced Contrastive Learning Alignment", "Embedding spaces becoming more aligned"
	case progress < 1:
		return "Nearing Optimal Alignment", "Image and text embeddings converging to shared space"
	default:
		return "Aligned Multimodal Embedding Space", "Contrastive learning has successfully aligned the embedding spaces"
	}
}

func stepTitle(step, steps int) string {
	return fmt.Sprintf("Contrastive Learning Space Alignment - Step %d/%d", step, steps)
}
