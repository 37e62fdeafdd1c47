package constants

// 商品排序方式常量
const (
	ProductSortDefault   = "default"
	ProductSortPriceLow  = "price-low"
	ProductSortPriceHigh = "price-high"
	ProductSortRating    = "rating"
	ProductSortName      = "name"
	ProductSortNewest    = "newest"
)

// 购物车存储常量
const (
	CartStoreKeyPrefix  = "binimoy:cart"
	CartDefaultStoreKey = "binimoy:cart:default"
	DeviceIDHeader      = "X-Device-ID"
)

// 配送地区常量
const (
	DefaultLocationID = "mirpur"
)

// 下单联系渠道常量
const (
	ContactChannelPhone     = "phone"
	ContactChannelWhatsApp  = "whatsapp"
	ContactChannelMessenger = "messenger"
)

// 结算模式常量
const (
	CheckoutModeCart   = "cart"
	CheckoutModeBuyNow = "buy_now"
)
