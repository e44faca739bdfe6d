package api

const (
	msgTokenRequired    = "Access token required"
	msgInvalidToken     = "Invalid token"
	msgEndpointNotFound = "API endpoint not found"
	msgInternalError    = "Something went wrong!"
	msgTooManyLogins    = "Too many login attempts"

	msgAccountNotFound = "Tài khoản không tồn tại"
	msgWrongPassword   = "Mật khẩu không chính xác"
	msgLoginSuccess    = "Đăng nhập thành công"

	msgJobNotFound    = "Không tìm thấy công việc"
	msgInvalidJobID   = "Mã công việc không hợp lệ"
	msgJobCreated     = "Tạo công việc thành công"
	msgJobUpdated     = "Cập nhật công việc thành công"
	msgJobDeleted     = "Xóa công việc thành công"
	msgJobActivated   = "Công việc đã được kích hoạt"
	msgJobDeactivated = "Công việc đã bị vô hiệu hóa"

	msgSalaryRange   = "Lương tối thiểu không thể lớn hơn lương tối đa"
	msgMissingFields = "Vui lòng điền đầy đủ thông tin bắt buộc"
	msgInvalidBody   = "Dữ liệu không hợp lệ"
)
