package resp

import (
	"net/http"

	"smartparking/be/biz/model/dto"
	"smartparking/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

func errBody(bizErr errs.Error) *dto.ErrorResp {
	return &dto.ErrorResp{
		Error: bizErr.Msg(),
		Code:  int(bizErr.Code()),
	}
}

// toBizErr hides anything that is not a business error behind ServerError.
func toBizErr(err error) errs.Error {
	if bizErr, ok := err.(errs.Error); ok && bizErr != nil {
		return bizErr
	}
	return errs.ServerError
}

func SuccessResp(c *app.RequestContext, data any) {
	c.JSON(http.StatusOK, data)
}

func MessageResp(c *app.RequestContext, msg string) {
	c.JSON(http.StatusOK, &dto.MessageResp{Mensaje: msg})
}

// FailResp writes the public message of err with its HTTP status, the cause
// never leaves the process.
func FailResp(c *app.RequestContext, err error) {
	bizErr := toBizErr(err)
	c.JSON(bizErr.HTTPStatus(), errBody(bizErr))
}

func AbortWithErr(c *app.RequestContext, err error) {
	bizErr := toBizErr(err)
	c.AbortWithStatusJSON(bizErr.HTTPStatus(), errBody(bizErr))
}
