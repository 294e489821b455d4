package viewer

import "fmt"

// Description is the explanatory text shown alongside one frame.
type Description struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Technical string `json:"technical"`
}

// Descriptions returns one entry per frame plus a final entry for the
// combined view, so len(result) == frames+1.
func Descriptions(frames int) []Description {
	if frames <= 0 {
		return nil
	}
	out := make([]Description, 0, frames+1)
	out = append(out, Description{
		Title:     "Initial Misaligned Spaces",
		Text:      "Starting with separate embedding spaces: similar concepts occupy different positions in image vs. text space.",
		Technical: "In contrastive learning, different modalities initially have their own separate feature spaces with different structures and orientations.",
	})

	quarter := frames / 4
	for i := 1; i < frames; i++ {
		switch {
		case i == frames-1:
			out = append(out, Description{
				Title:     "Complete Alignment",
				Text:      "Spaces aligned! Same concepts now occupy similar positions across modalities.",
				Technical: "A successful alignment enables zero-shot transfer between modalities and robust multimodal fusion.",
			})
		case i < quarter:
			out = append(out, Description{
				Title:     fmt.Sprintf("Beginning Alignment (Step %d)", i),
				Text:      "Contrastive learning begins pulling corresponding points together across modalities.",
				Technical: "The contrastive loss function minimizes distance between positive pairs (same concept in different modalities) while pushing apart negative pairs.",
			})
		case i < 2*quarter:
			out = append(out, Description{
				Title:     fmt.Sprintf("Progressive Alignment (Step %d)", i),
				Text:      "Gradual alignment continues as the embedding spaces transform toward a common structure.",
				Technical: "Both image and text encoders are trained concurrently, adjusting their parameters to project semantically similar concepts to nearby regions.",
			})
		case i < 3*quarter:
			out = append(out, Description{
				Title:     fmt.Sprintf("Approaching Alignment (Step %d)", i),
				Text:      "Similar concepts across modalities are now positioned much closer in the embedding space.",
				Technical: "The temperature parameter in the contrastive loss controls how sharply the model focuses on the hardest negative examples.",
			})
		default:
			out = append(out, Description{
				Title:     fmt.Sprintf("Near-Complete Alignment (Step %d)", i),
				Text:      "Embedding spaces are nearly aligned, enabling effective cross-modal retrieval.",
				Technical: "The projection heads transform the representation to a space where contrastive loss is applied, often discarded after training.",
			})
		}
	}

	out = append(out, Description{
		Title:     "Combined Multimodal Space",
		Text:      "The final shared embedding space where both modalities effectively represent the same concepts.",
		Technical: "This shared space enables cross-modal operations like image-to-text retrieval, text-to-image retrieval, and zero-shot transfer learning.",
	})
	return out
}
