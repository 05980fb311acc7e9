package errs

import (
	"fmt"
	"net/http"
)

type Error interface {
	Error() string
	Code() int32
	Msg() string
	HTTPStatus() int
	Unwrap() error
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	code   int32
	status int
	msg    string
	cause  error
}

func (bizErr *bizError) Error() string {
	if bizErr.cause != nil {
		return fmt.Sprintf("%d:%s: %v", bizErr.code, bizErr.msg, bizErr.cause)
	}
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) HTTPStatus() int {
	return bizErr.status
}

func (bizErr *bizError) Unwrap() error {
	return bizErr.cause
}

// SetErr attaches the internal cause. The cause is only visible through
// Error() for logging, Msg() stays the public message.
func (bizErr *bizError) SetErr(err error) Error {
	return &bizError{
		code:   bizErr.code,
		status: bizErr.status,
		msg:    bizErr.msg,
		cause:  err,
	}
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return &bizError{
		code:   bizErr.code,
		status: bizErr.status,
		msg:    msg,
		cause:  bizErr.cause,
	}
}

func New(code int32, status int, msg string) Error {
	return &bizError{
		code:   code,
		status: status,
		msg:    msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	// 都为空
	if err1 == nil && err2 == nil {
		return true
	}

	// 只有一个不为空
	if err1 == nil || err2 == nil {
		return false
	}

	// 都不为空
	return err1.Code() == err2.Code()
}

var (
	Success        = New(0, http.StatusOK, "success")
	ServerError    = New(1_0001, http.StatusInternalServerError, "Error interno del servidor.")
	ParamError     = New(1_0002, http.StatusBadRequest, "Parámetros inválidos.")
	Unauthorized   = New(1_0003, http.StatusUnauthorized, "Usuario no autenticado.")
	TooManyRequest = New(1_0004, http.StatusTooManyRequests, "Demasiadas solicitudes.")
	RequestBlocked = New(1_0006, http.StatusForbidden, "Solicitud bloqueada temporalmente.")

	InvalidCredentials = New(2_0001, http.StatusUnauthorized, "Credenciales inválidas (correo o contraseña).")
	PasswordMismatch   = New(2_0002, http.StatusBadRequest, "Las contraseñas no coinciden")
	UserNotFound       = New(2_0003, http.StatusNotFound, "Usuario no encontrado.")
	UserNotChanged     = New(2_0004, http.StatusNotFound, "Usuario no encontrado o no se realizaron cambios.")
	UserDuplicated     = New(2_0005, http.StatusConflict, "El correo o la cédula ya están registrados.")
)
