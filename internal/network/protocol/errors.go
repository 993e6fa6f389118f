package protocol

// 错误码
const (
	ErrCodeUnknown      = 1000
	ErrCodeInvalidMsg   = 1001
	ErrCodeRoomNotFound = 2001
	ErrCodeRoomCreation = 2002 // 房间 ID 分配失败
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:      "未知错误",
	ErrCodeInvalidMsg:   "无效的消息格式",
	ErrCodeRoomNotFound: "房间不存在",
	ErrCodeRoomCreation: "无法分配唯一的房间 ID",
}
