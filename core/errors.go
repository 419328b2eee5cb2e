package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - Store 错误：NOT_FOUND, NOT_SUPPORTED
//   - 数据集错误：INVALID_INPUT（脏行、缺列）
//   - 流水线退化条件：NO_ESTIMABLE_NEIGHBOR
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "NO_ESTIMABLE_NEIGHBOR"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "cf", "dataset"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误是否为 DomainError 类型
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*DomainError)
	return ok
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound            = "NOT_FOUND"             // 资源不存在
	ErrorCodeNotSupported        = "NOT_SUPPORTED"         // 操作不支持
	ErrorCodeInvalidInput        = "INVALID_INPUT"         // 输入无效
	ErrorCodeInternalError       = "INTERNAL_ERROR"        // 内部错误
	ErrorCodeNoEstimableNeighbor = "NO_ESTIMABLE_NEIGHBOR" // 存在无法估计的 (user, item) 对
)

// 模块名称常量
const (
	ModuleStore   = "store"   // 存储模块
	ModuleCF      = "cf"      // 协同过滤核心
	ModuleDataset = "dataset" // 数据集读写
)

// ErrNoEstimableNeighbor 表示评分估计阶段遇到了一个可达但无法估计的
// (user, item) 对：用户评过该物品，但没评过该物品邻域中的任何物品。
//
// 历史行为是整轮估计短路、返回空结果（全局失败而非局部跳过）。这里保留
// 全局短路语义，但以命名错误暴露给调用方，而不是无声的空 map，
// 调用方用 IsNoEstimableNeighbor 分支处理退化结果。
var ErrNoEstimableNeighbor = NewDomainError(ModuleCF, ErrorCodeNoEstimableNeighbor,
	"cf: user rated item but none of its neighbors, estimation pass aborted")

// IsNoEstimableNeighbor 检查错误是否为估计退化条件
func IsNoEstimableNeighbor(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNoEstimableNeighbor
	}
	return false
}
