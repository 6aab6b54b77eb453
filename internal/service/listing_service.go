package service

import (
	"violethacks/internal/domain"
	"violethacks/internal/moderation"
	"violethacks/internal/policy"
	"violethacks/internal/repo"
	"violethacks/pkg/utils"
)

// ListingInput 创建/编辑列表的内容字段
type ListingInput struct {
	Title       string
	Game        string
	Version     string
	Description string
	DownloadURL string
	Safety      domain.SafetyStatus
}

type ListingService struct {
	listings *repo.ListingRepo
}

func NewListingService(listings *repo.ListingRepo) *ListingService {
	return &ListingService{listings: listings}
}

// ListVerified 公开目录：只含 VERIFIED，最新在前
func (s *ListingService) ListVerified() ([]domain.Listing, error) {
	return s.listings.ListByStatus(domain.ModerationVerified)
}

// ListByStatus 审核队列（管理端）
func (s *ListingService) ListByStatus(actor *domain.Account, status domain.ModerationStatus) ([]domain.Listing, error) {
	if !policy.Can(actor.Role, policy.ActionModerateListing) {
		return nil, domain.ErrInsufficientPrivilege
	}
	return s.listings.ListByStatus(status)
}

// ListMine 上传者看自己的全部列表，含待审/驳回
func (s *ListingService) ListMine(actor *domain.Account) ([]domain.Listing, error) {
	return s.listings.ListByAuthor(actor.ID)
}

// Create MEMBER 无上传权限；MODERATOR/ADMIN 上传即发布，SUPPORTER 进待审
func (s *ListingService) Create(in ListingInput, actor *domain.Account) (*domain.Listing, error) {
	status, err := moderation.InitialStatus(actor.Role)
	if err != nil {
		return nil, err
	}
	l := &domain.Listing{
		ID:          utils.NewID(),
		Title:       in.Title,
		Game:        in.Game,
		Version:     in.Version,
		Description: in.Description,
		DownloadURL: in.DownloadURL,
		AuthorID:    actor.ID,
		AuthorName:  actor.Username, // 创建时快照，之后改名不回写
		Safety:      in.Safety,
		Moderation:  status,
	}
	if err := s.listings.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Update 本人或 ADMIN 改内容字段；审核状态这里不动，走 SetModerationStatus
func (s *ListingService) Update(id string, in ListingInput, actor *domain.Account) (*domain.Listing, error) {
	l, err := s.listings.FindByID(id)
	if err != nil || l == nil {
		return nil, err
	}
	if !policy.CanTouchListing(actor, l.AuthorID) {
		return nil, domain.ErrInsufficientPrivilege
	}
	l.Title = in.Title
	l.Game = in.Game
	l.Version = in.Version
	l.Description = in.Description
	l.DownloadURL = in.DownloadURL
	l.Safety = in.Safety
	if err := s.listings.Update(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete 本人或 ADMIN，任意审核状态都可删，级联删除评论
func (s *ListingService) Delete(id string, actor *domain.Account) error {
	l, err := s.listings.FindByID(id)
	if err != nil || l == nil {
		return err
	}
	if !policy.CanTouchListing(actor, l.AuthorID) {
		return domain.ErrInsufficientPrivilege
	}
	return s.listings.DeleteCascade(id)
}

// IncrementDownloads 无需登录；id 不存在返回 nil
func (s *ListingService) IncrementDownloads(id string) (*domain.Listing, error) {
	n, err := s.listings.IncrementDownloads(id)
	if err != nil || n == 0 {
		return nil, err
	}
	return s.listings.FindByID(id)
}

// SetModerationStatus 仅 ADMIN；三态两两可达，目标与当前相同是空操作
func (s *ListingService) SetModerationStatus(id string, to domain.ModerationStatus, actor *domain.Account) (*domain.Listing, error) {
	if !policy.Can(actor.Role, policy.ActionModerateListing) {
		return nil, domain.ErrInsufficientPrivilege
	}
	l, err := s.listings.FindByID(id)
	if err != nil || l == nil {
		return nil, err
	}
	if moderation.IsNoop(l.Moderation, to) {
		return l, nil
	}
	if !moderation.CanTransition(l.Moderation, to) {
		return nil, domain.ErrInsufficientPrivilege
	}
	l.Moderation = to
	if err := s.listings.Update(l); err != nil {
		return nil, err
	}
	return l, nil
}
