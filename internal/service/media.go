package service

import "context"

// MediaStore 上传返回 (url, key)；Remove 对已不存在的对象返回成功
type MediaStore interface {
	Store(ctx context.Context, data []byte, contentType string) (url, key string, err error)
	Remove(ctx context.Context, key string) error
}
