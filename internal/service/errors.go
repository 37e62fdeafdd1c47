package service

import "errors"

// 业务错误定义
var (
	// ErrNotFound 资源不存在
	ErrNotFound = errors.New("resource not found")
	// ErrProductNotAvailable 商品不存在或已下架
	ErrProductNotAvailable = errors.New("product not available")
	// ErrStoreKeyInvalid 购物车存储键非法
	ErrStoreKeyInvalid = errors.New("store key invalid")
)
