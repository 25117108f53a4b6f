package middleware

import (
	"bytes"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/taskd/backend/internal/interfaces/http/response"
	"golang.org/x/text/unicode/norm"
)

// NormalizeBody 校验任务请求体必须是 UTF-8，并统一为 NFC 形式
// 同一任务名的组合字符与预组字符写入后保持一致
func NormalizeBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		c.Request.Body.Close()
		if err != nil {
			response.ErrorWithDetail(c, http.StatusBadRequest, 100001, "参数错误", err.Error())
			c.Abort()
			return
		}

		if !utf8.Valid(raw) {
			response.ErrorWithDetail(c, http.StatusBadRequest, 100001, "参数错误", "request body is not valid UTF-8")
			c.Abort()
			return
		}

		body := norm.NFC.Bytes(raw)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Request.ContentLength = int64(len(body))

		c.Next()
	}
}
