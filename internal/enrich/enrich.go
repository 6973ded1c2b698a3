package enrich

import (
	"context"
	"log"

	"github.com/pathlight/pathlight/internal/planner"
)

// Video is one recommended video attached to a daily plan.
type Video struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// VideoSearcher finds videos relevant to a day's topic.
type VideoSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]Video, error)
}

// AudioSynthesizer produces a narrated version of a day's content and
// reports whether audio is available for it.
type AudioSynthesizer interface {
	Synthesize(ctx context.Context, text string) (audioURL string, err error)
}

// DayExtras is supplementary material attached to one daily plan. It lives
// alongside the plan rather than inside it; the planning core never reads
// these fields.
type DayExtras struct {
	Day               int     `json:"day"`
	RecommendedVideos []Video `json:"recommended_videos,omitempty"`
	AudioURL          string  `json:"audio_url,omitempty"`
	AudioAvailable    bool    `json:"audio_available"`
}

// Enricher attaches supplementary material to a finished path. Either
// collaborator may be nil, in which case its enrichment is skipped.
type Enricher struct {
	videos VideoSearcher
	audio  AudioSynthesizer
}

// NewEnricher creates an enricher from the available collaborators.
func NewEnricher(videos VideoSearcher, audio AudioSynthesizer) *Enricher {
	return &Enricher{videos: videos, audio: audio}
}

// Enrich produces extras for every day of the path. Collaborator failures
// degrade to missing extras for the affected day, never to an error.
func (e *Enricher) Enrich(ctx context.Context, path *planner.LearningPath) []DayExtras {
	extras := make([]DayExtras, len(path.DailyPlans))
	for i, day := range path.DailyPlans {
		extras[i].Day = day.Day

		if e.videos != nil {
			videos, err := e.videos.Search(ctx, path.Goal+" "+day.Title, 3)
			if err != nil {
				log.Printf("video search for day %d failed: %v", day.Day, err)
			} else {
				extras[i].RecommendedVideos = videos
			}
		}

		if e.audio != nil {
			url, err := e.audio.Synthesize(ctx, day.Content)
			if err != nil {
				log.Printf("audio synthesis for day %d failed: %v", day.Day, err)
			} else {
				extras[i].AudioURL = url
				extras[i].AudioAvailable = url != ""
			}
		}
	}
	return extras
}
