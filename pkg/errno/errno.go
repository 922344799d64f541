package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	AuthErrCode                = 10003
	NotFoundErrCode            = 10004
	NotFoundOrForbiddenErrCode = 10005
	ConflictErrCode            = 10006
	MysqlErrCode               = 10007
	RedisErrCode               = 10008
	OssErrCode                 = 10009
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success    = NewErrNo(SuccessCode, "Success")
	ServiceErr = NewErrNo(ServiceErrCode, "Service internal error")
	ParamErr   = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	AuthErr    = NewErrNo(AuthErrCode, "Authentication failed")

	NotFoundErr = NewErrNo(NotFoundErrCode, "Record not found")
	// NotFoundOrForbiddenErr deliberately merges "missing" and "not owned" so
	// that callers cannot probe for the existence of other users' records.
	NotFoundOrForbiddenErr = NewErrNo(NotFoundOrForbiddenErrCode, "Record not found or no permission")
	ConflictErr            = NewErrNo(ConflictErrCode, "Record conflicts with an existing one")

	MysqlErr = NewErrNo(MysqlErrCode, "Mysql operation failed")
	RedisErr = NewErrNo(RedisErrCode, "Redis operation failed")
	OssErr   = NewErrNo(OssErrCode, "Object storage operation failed")
)

// ConvertErr maps any error onto an ErrNo for the response envelope.
func ConvertErr(err error) ErrNo {
	e := ErrNo{}
	if errors.As(err, &e) {
		return e
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
