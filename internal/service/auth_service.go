package service

import (
	"strings"

	"violethacks/internal/domain"
	"violethacks/internal/repo"
	"violethacks/pkg/utils"
)

// AdminSeed 保留管理员的固定凭据，来自配置，不走普通注册
type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

type AuthService struct {
	accounts *repo.AccountRepo
	seed     AdminSeed
}

func NewAuthService(accounts *repo.AccountRepo, seed AdminSeed) *AuthService {
	return &AuthService{accounts: accounts, seed: seed}
}

// EnsureAdmin 启动时保证保留管理员账号存在且唯一
func (s *AuthService) EnsureAdmin() (*domain.Account, error) {
	a, err := s.accounts.FindByEmail(s.seed.Email)
	if err != nil {
		return nil, err
	}
	if a != nil {
		return a, nil
	}
	a = &domain.Account{
		ID:           "admin_master_01",
		Email:        s.seed.Email,
		Username:     s.seed.Name,
		PasswordHash: utils.HashPassword(s.seed.Password),
		Bio:          "Official Administrator and Lead Developer of VioletHacks.",
		Role:         domain.RoleAdmin,
		Badges:       []string{"DEV", "OG", "VERIFIED"},
		AdminNotes:   "Main system administrator.",
	}
	if err := s.accounts.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Authenticate 登录入口：保留管理员走固定密钥；未知邮箱自动注册为 MEMBER；
// 已有账号校验密码，封禁账号直接拒绝
func (s *AuthService) Authenticate(email, password string) (*domain.Account, bool, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	// 管理员邮箱永远不走自动注册，密钥不匹配即失败
	if email == s.seed.Email {
		if password != s.seed.Password {
			return nil, false, domain.ErrInvalidCredentials
		}
		a, err := s.accounts.FindByEmail(email)
		if err != nil {
			return nil, false, err
		}
		if a == nil {
			return nil, false, domain.ErrInvalidCredentials
		}
		return a, false, nil
	}

	a, err := s.accounts.FindByEmail(email)
	if err != nil {
		return nil, false, err
	}
	if a != nil {
		if a.Banned {
			return nil, false, domain.ErrAccountBanned
		}
		if !utils.CheckPassword(password, a.PasswordHash) {
			return nil, false, domain.ErrInvalidCredentials
		}
		return a, false, nil
	}

	// 首次出现的邮箱：自动注册，用户名取邮箱 local-part
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	a = &domain.Account{
		ID:           "u_" + utils.NewID(),
		Email:        email,
		Username:     name,
		PasswordHash: utils.HashPassword(password),
		Bio:          "New member of the VioletHacks community.",
		Role:         domain.RoleMember,
		Badges:       []string{},
	}
	if err := s.accounts.Create(a); err != nil {
		// 并发兜底：唯一冲突 → 再查一次
		if isDupKey(err) {
			if a2, e2 := s.accounts.FindByEmail(email); e2 == nil && a2 != nil {
				return a2, false, nil
			}
		}
		return nil, false, err
	}
	return a, true, nil
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique")
}
