package service

import (
	"context"
	"errors"

	"Haven_Community/internal/model"
	"Haven_Community/internal/pkg"
	"Haven_Community/internal/repository/mysql"
	"Haven_Community/internal/repository/redis"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService struct {
	repo     *mysql.AccountRepository
	rSession *redis.SessionRepository
	emailSvc *EmailService
	media    MediaStore
}

func NewAccountService(db *gorm.DB, emailSvc *EmailService, media MediaStore) *AccountService {
	return &AccountService{
		repo:     &mysql.AccountRepository{DB: db},
		rSession: &redis.SessionRepository{},
		emailSvc: emailSvc,
		media:    media,
	}
}

func (s *AccountService) Register(username, password, email, code string) error {
	ok, err := s.emailSvc.VerifyCode("register", email, code)
	if err != nil || !ok {
		return errors.New("verification failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := &model.Account{
		Username: username,
		Password: string(hash),
		Email:    email,
		Kind:     model.KindStandard,
	}

	return s.repo.Create(account)
}

func (s *AccountService) Login(username, password string) (*pkg.Pair, error) {
	account, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, errors.New("account not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return nil, errors.New("invalid password")
	}
	token, err := pkg.GeneratePair(account.ID, account.Kind)
	if err != nil {
		return nil, err
	}
	// 单点登录：新token写入redis顶掉旧会话
	if err = s.rSession.AddSessionToken(account.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *AccountService) Logout(accountID uint64) error {
	return s.rSession.DeleteSessionToken(accountID)
}

func (s *AccountService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err = s.rSession.AddSessionToken(claims.AccountID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// ResetPassword 忘记密码走邮箱验证码
func (s *AccountService) ResetPassword(email, code, newPassword string) error {
	ok, err := s.emailSvc.VerifyCode("reset", email, code)
	if err != nil || !ok {
		return errors.New("verification failed")
	}

	account, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(account, string(hash))
}

// ChangePassword 登录态修改密码
func (s *AccountService) ChangePassword(accountID uint64, oldPassword, newPassword string) error {
	account, err := s.repo.FindByID(accountID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(account, string(hash))
}

func (s *AccountService) UpdateProfile(accountID uint64, bio string) error {
	return s.repo.UpdateProfile(accountID, bio)
}

// UpdateAvatar 先传新图再换引用；旧图在库提交之后尽力删，
// 删失败只记日志，不回滚已提交的数据
func (s *AccountService) UpdateAvatar(ctx context.Context, accountID uint64, data []byte, contentType string) (string, error) {
	if s.media == nil {
		return "", errors.New("media store not configured")
	}
	url, key, err := s.media.Store(ctx, data, contentType)
	if err != nil {
		return "", err
	}

	oldKey, err := s.repo.UpdateAvatar(accountID, url, key)
	if err != nil {
		return "", err
	}

	if oldKey != "" {
		if err := s.media.Remove(ctx, oldKey); err != nil {
			logrus.WithError(err).WithField("key", oldKey).Warn("remove old avatar failed")
		}
	}
	return url, nil
}
