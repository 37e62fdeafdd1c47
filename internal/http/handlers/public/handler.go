package public

import "github.com/binimoy-shop/internal/provider"

// Handler 前台/公开接口处理器入口
// 说明：店铺为纯前台应用，全部接口免登录。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
