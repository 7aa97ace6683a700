package modes

import (
	"context"
	"errors"
	"fmt"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/unsplash"
)

// imageCount is how many photos a search sends back.
const imageCount = 3

// Images answers photo-search requests. Stateless.
type Images struct {
	searcher ImageSearcher
}

// NewImages creates the images handler.
func NewImages(s ImageSearcher) *Images {
	return &Images{searcher: s}
}

func (h *Images) Handle(ctx context.Context, topic string, _ *session.Session) []Message {
	urls, err := h.searcher.Search(ctx, topic, imageCount)
	if errors.Is(err, unsplash.ErrNoKey) {
		return text("Unsplash API key is missing! 😿✨")
	}
	if err != nil {
		logging.L_error("images: search failed", "topic", topic, "error", err)
		return text("Failed to fetch images. 😿✨")
	}
	if len(urls) == 0 {
		return text(fmt.Sprintf("I couldn't find any images for \"%s\". 😿✨", topic))
	}

	return []Message{
		{PhotoURLs: urls},
		{Text: fmt.Sprintf("Here are 3 cute images of \"%s\" for you! ✨💖🌸", topic)},
	}
}
