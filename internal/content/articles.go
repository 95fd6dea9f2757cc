package content

import (
	"context"
	"time"

	"github.com/carelink/portal-gateway/internal/domain"
	"github.com/carelink/portal-gateway/internal/upstream"
)

// Fetcher is the slice of the content client the article pages need.
type Fetcher interface {
	ListPosts(ctx context.Context, limit int) ([]upstream.Post, error)
	GetPost(ctx context.Context, id int) (upstream.Post, error)
}

// articleOverlay is editorial metadata applied over the raw content records,
// in feed order.
type articleOverlay struct {
	title       string
	description string
	category    string
	author      string
	readTime    int
	tags        []string
}

var overlays = []articleOverlay{
	{
		title:       "COVID-19 Updates",
		description: "Stay informed about the latest COVID-19 guidelines and vaccination information.",
		category:    "Infectious Disease",
		author:      "Dr. Sarah Johnson",
		readTime:    8,
		tags:        []string{"COVID-19", "Vaccination", "Prevention", "Guidelines"},
	},
	{
		title:       "Seasonal Flu Prevention",
		description: "Learn about steps you can take to prevent the seasonal flu and when to get vaccinated.",
		category:    "Prevention",
		author:      "Dr. Michael Chen",
		readTime:    6,
		tags:        []string{"Influenza", "Vaccination", "Prevention", "Seasonal"},
	},
	{
		title:       "Mental Health Awareness",
		description: "Explore resources and support options for maintaining good mental health.",
		category:    "Mental Health",
		author:      "Dr. Emily Rodriguez",
		readTime:    10,
		tags:        []string{"Mental Health", "Wellness", "Support", "Self-Care"},
	},
	{
		title:       "Heart Health Essentials",
		description: "Everything you need to know about maintaining a healthy heart and preventing cardiovascular disease.",
		category:    "Cardiology",
		author:      "Dr. James Patel",
		readTime:    7,
		tags:        []string{"Cardiology", "Prevention", "Lifestyle"},
	},
	{
		title:       "Diabetes Management",
		description: "Learn about effective strategies for managing diabetes and maintaining healthy blood sugar levels.",
		category:    "Endocrinology",
		author:      "Dr. Aisha Rahman",
		readTime:    9,
		tags:        []string{"Diabetes", "Nutrition", "Monitoring"},
	},
	{
		title:       "Nutrition and Wellness",
		description: "Discover the importance of balanced nutrition and how it impacts your overall wellness.",
		category:    "Nutrition",
		author:      "Dr. Laura Kim",
		readTime:    5,
		tags:        []string{"Nutrition", "Wellness", "Diet"},
	},
}

const articleFeedSize = 6

// Service builds the health information feed from the content service.
type Service struct {
	fetcher Fetcher
	now     func() time.Time
}

func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher, now: time.Now}
}

// Articles returns the front-page feed: one article per content record, with
// the curated metadata applied in order.
func (s *Service) Articles(ctx context.Context) ([]domain.Article, error) {
	posts, err := s.fetcher.ListPosts(ctx, articleFeedSize)
	if err != nil {
		return nil, err
	}

	now := s.now()
	articles := make([]domain.Article, 0, len(posts))
	for i, post := range posts {
		ov := overlays[i%len(overlays)]
		articles = append(articles, domain.Article{
			ID:            post.ID,
			Title:         ov.title,
			Description:   ov.description,
			Category:      ov.category,
			PublishedDate: now.AddDate(0, 0, -i).Format(time.RFC3339),
		})
	}
	return articles, nil
}

// Article returns one feed entry with its full editorial metadata.
func (s *Service) Article(ctx context.Context, id int) (domain.Article, error) {
	post, err := s.fetcher.GetPost(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	ov := overlays[0]
	if id >= 1 && id <= len(overlays) {
		ov = overlays[id-1]
	}
	return domain.Article{
		ID:            post.ID,
		Title:         ov.title,
		Description:   ov.description,
		Category:      ov.category,
		PublishedDate: s.now().Format(time.RFC3339),
		Author:        ov.author,
		ReadTime:      ov.readTime,
		Tags:          ov.tags,
	}, nil
}
