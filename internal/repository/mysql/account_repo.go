package mysql

import (
	"Haven_Community/internal/model"

	"gorm.io/gorm"
)

type AccountRepository struct {
	DB *gorm.DB
}

func (r *AccountRepository) Create(account *model.Account) error {
	return r.DB.Create(account).Error
}

func (r *AccountRepository) FindByUsername(username string) (*model.Account, error) {
	var account model.Account
	err := r.DB.Where("username = ? OR email = ?", username, username).First(&account).Error
	return &account, err
}

func (r *AccountRepository) FindByID(id uint64) (*model.Account, error) {
	var account model.Account
	err := r.DB.First(&account, id).Error
	return &account, err
}

func (r *AccountRepository) FindByEmail(email string) (*model.Account, error) {
	var account model.Account
	err := r.DB.Where("email = ?", email).First(&account).Error
	return &account, err
}

func (r *AccountRepository) UpdatePassword(account *model.Account, newPassword string) error {
	return r.DB.Model(account).Update("password", newPassword).Error
}

func (r *AccountRepository) UpdateProfile(id uint64, bio string) error {
	return r.DB.Model(&model.Account{}).Where("id = ?", id).Update("bio", bio).Error
}

// UpdateAvatar 返回旧的对象key，提交后由上层尽力删除远端旧图
func (r *AccountRepository) UpdateAvatar(id uint64, url, key string) (oldKey string, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		var account model.Account
		if err := lockForUpdate(tx).First(&account, id).Error; err != nil {
			return err
		}
		oldKey = account.AvatarKey
		return tx.Model(&account).Updates(map[string]any{
			"avatar_url": url,
			"avatar_key": key,
		}).Error
	})
	return oldKey, err
}
