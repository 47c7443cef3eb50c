package dto

import (
	"time"

	"shortlink/internal/domain/models"
)

// Request
type (
	LinkRequest struct {
		Link      string     `json:"link"`
		ExpiresAt *time.Time `json:"expires_at"`
	}

	CustomLinkRequest struct {
		Link        string     `json:"link"`
		CustomAlias string     `json:"custom_alias"`
		ExpiresAt   *time.Time `json:"expires_at"`
	}
)

// Response
type (
	ShortenResponse struct {
		ShortLink string `json:"short_link"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}

	StatsResponse struct {
		ShortLink        string     `json:"short_link"`
		OriginalURL      string     `json:"original_url"`
		CreatedAt        time.Time  `json:"created_at"`
		TransitionsCount int64      `json:"transitions_count"`
		LastUseDate      *time.Time `json:"last_use_date"`
	}

	SearchResponse struct {
		ShortLink string `json:"short_link"`
	}

	OverviewResponse struct {
		Active  int64 `json:"active"`
		Expired int64 `json:"expired"`
	}
)

// Domain → Response
func ShortenResponseFromDomain(link models.Link) ShortenResponse {
	return ShortenResponse{ShortLink: link.ShortCode}
}

func StatsResponseFromDomain(stats models.LinkStats) StatsResponse {
	return StatsResponse{
		ShortLink:        stats.ShortCode,
		OriginalURL:      stats.OriginalURL,
		CreatedAt:        stats.CreatedAt,
		TransitionsCount: stats.Transitions,
		LastUseDate:      stats.LastUse,
	}
}

func OverviewResponseFromDomain(overview models.UserOverview) OverviewResponse {
	return OverviewResponse{
		Active:  overview.Active,
		Expired: overview.Expired,
	}
}
