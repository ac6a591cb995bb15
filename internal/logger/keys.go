package logger

const (
	KeyAppName       = "app"
	KeyTag           = "tag"
	KeyRequestID     = "requestId"
	KeyRequestMethod = "requestMethod"
	KeyRequestPath   = "requestPath"
	KeyRequestIP     = "requesterIP"
	KeyStatus        = "status"
	KeyLatency       = "latency"
	KeyProductID     = "productId"
	KeyUsername      = "username"
	KeyRoutingKey    = "routingKey"
	KeyConfig        = "config"
)
