package service

import (
	"context"
	"errors"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"
	"Haven_Community/internal/repository/mysql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CommunityService struct {
	db         *gorm.DB
	repo       *mysql.CommunityRepository
	memberRepo *mysql.MembershipRepository
	media      MediaStore
}

func NewCommunityService(db *gorm.DB, media MediaStore) *CommunityService {
	return &CommunityService{
		db:         db,
		repo:       &mysql.CommunityRepository{DB: db},
		memberRepo: &mysql.MembershipRepository{DB: db},
		media:      media,
	}
}

func (s *CommunityService) Create(accountID uint64, name, desc string, private bool) (*model.Community, error) {
	if name == "" {
		return nil, errors.New("community name required")
	}

	community := &model.Community{
		Name:        name,
		Description: desc,
		Private:     private,
		CreatorID:   accountID,
	}

	if _, err := s.repo.Create(community); err != nil {
		return nil, err
	}
	return community, nil
}

func (s *CommunityService) List(page, size int) ([]model.Community, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	offset := (page - 1) * size
	return s.repo.List(offset, size)
}

// Get 私有社区详情只对成员和创建者开放
func (s *CommunityService) Get(accountID, communityID uint64) (*model.Community, error) {
	ac, err := authz.ResolveCommunity(s.db, accountID, communityID)
	if err != nil {
		return nil, err
	}
	if err = authz.GateCommunity(ac, authz.ModeDetail); err != nil {
		return nil, err
	}
	return s.repo.FindByID(communityID)
}

// ListMembers 私有社区对非成员装作不存在（NotFound 而不是 Forbidden）
func (s *CommunityService) ListMembers(ctx context.Context, accountID, communityID uint64, cursor uint64, limit int) ([]model.Membership, uint64, error) {
	ac, err := authz.ResolveCommunity(s.db, accountID, communityID)
	if err != nil {
		return nil, 0, err
	}
	if err = authz.GateCommunity(ac, authz.ModeListing); err != nil {
		return nil, 0, err
	}
	return s.memberRepo.ListByCommunity(ctx, communityID, cursor, limit)
}

func (s *CommunityService) UpdateProfile(ctx context.Context, accountID, communityID uint64, description string, private bool) error {
	return s.repo.UpdateProfile(ctx, accountID, communityID, description, private)
}

func (s *CommunityService) UpdateMedia(ctx context.Context, accountID, communityID uint64, data []byte, contentType string) (string, error) {
	if s.media == nil {
		return "", errors.New("media store not configured")
	}
	url, key, err := s.media.Store(ctx, data, contentType)
	if err != nil {
		return "", err
	}
	oldKey, err := s.repo.UpdateMedia(ctx, accountID, communityID, url, key)
	if err != nil {
		return "", err
	}
	if oldKey != "" {
		if err := s.media.Remove(ctx, oldKey); err != nil {
			logrus.WithError(err).WithField("key", oldKey).Warn("remove old community media failed")
		}
	}
	return url, nil
}

// Delete 库内级联在一个事务里做完；远端媒体删除放在提交之后，
// 失败只记日志不回滚
func (s *CommunityService) Delete(ctx context.Context, accountID, communityID uint64) error {
	mediaKeys, err := s.repo.DeleteCascade(ctx, accountID, communityID)
	if err != nil {
		return err
	}
	if s.media != nil {
		for _, key := range mediaKeys {
			if err := s.media.Remove(ctx, key); err != nil {
				logrus.WithError(err).WithField("key", key).Warn("remove community media failed")
			}
		}
	}
	return nil
}
