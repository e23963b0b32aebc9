package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var mobileRe = regexp.MustCompile(`^1[3-9]\d{9}$`)

// IsMobile 校验手机号格式，注册/登录请求的 phone 字段使用
func IsMobile(fl validator.FieldLevel) bool {
	return mobileRe.MatchString(fl.Field().String())
}
