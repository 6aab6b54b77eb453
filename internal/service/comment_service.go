package service

import (
	"strings"

	"violethacks/internal/domain"
	"violethacks/internal/repo"
	"violethacks/pkg/utils"
)

type CommentService struct {
	comments *repo.CommentRepo
	listings *repo.ListingRepo
}

func NewCommentService(comments *repo.CommentRepo, listings *repo.ListingRepo) *CommentService {
	return &CommentService{comments: comments, listings: listings}
}

// List 最新在前
func (s *CommentService) List(listingID string) ([]domain.Comment, error) {
	return s.comments.ListByListing(listingID)
}

// Add 登录且未封禁即可评论；作者展示字段取当前快照，之后不再同步
func (s *CommentService) Add(listingID string, actor *domain.Account, text string) (*domain.Comment, error) {
	if actor.Banned {
		return nil, domain.ErrInsufficientPrivilege
	}
	l, err := s.listings.FindByID(listingID)
	if err != nil || l == nil {
		return nil, err
	}
	c := &domain.Comment{
		ID:         "comment_" + utils.NewID(),
		ListingID:  l.ID,
		UserID:     actor.ID,
		Username:   actor.Username,
		UserAvatar: actor.Avatar,
		UserRole:   actor.Role,
		Text:       strings.TrimSpace(text),
	}
	if err := s.comments.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}
