package impl

import (
	"github.com/google/uuid"

	"github.com/twizzapp/feed-service/internal/entities"
	"github.com/twizzapp/feed-service/internal/service"
)

// canView decides if the viewer may see the post. The author always sees
// their own posts. Circle membership can not be resolved when the author
// profile is missing or banned.
func canView(post *entities.Post, author *entities.Profile, viewer *uuid.UUID) error {
	if post.Audience == entities.AudienceEveryone {
		return nil
	}

	if viewer == nil {
		return service.ErrAuthenticationRequired
	}

	if *viewer == post.AuthorID {
		return nil
	}

	switch post.Audience {
	case entities.AudienceOnlyAuthor:
		return service.ErrNotInAudience
	case entities.AudienceCircle:
		if author == nil || author.Banned {
			return service.ErrAuthorUnavailable
		}

		for _, id := range author.Circle {
			if id == *viewer {
				return nil
			}
		}

		return service.ErrNotInAudience
	}

	return service.ErrNotInAudience
}
