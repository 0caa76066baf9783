package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 64 << 10

var errBadBody = errors.New("malformed request body")

// bind fills dst from a JSON body, or from form values for any other
// content type.
func bind(w http.ResponseWriter, r *http.Request, dst any, fromForm func(url.Values)) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
		if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w", errBadBody, err)
		}
		return nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", errBadBody, err)
	}
	fromForm(r.Form)
	return nil
}

var fieldMessages = map[string]string{
	"userId":   "아이디는 최소 4글자에서 16글자까지 입력가능합니다.",
	"userName": "이름은 10글자까지 입력가능합니다.",
	"password": "비밀번호는 16글자까지 입력가능합니다.",
	"email":    "이메일은 30글자까지 입력가능합니다.",
	"addr1":    "주소는 30글자까지 입력가능합니다.",
	"addr2":    "상세 주소는 100글자까지 입력가능합니다.",
}

var requiredMessages = map[string]string{
	"userId":   "아이디는 필수 입력 사항입니다.",
	"userName": "이름은 필수 입력 사항입니다.",
	"password": "비밀번호는 필수 입력 사항입니다.",
	"email":    "이메일은 필수 입력 사항입니다.",
	"addr1":    "주소는 필수 입력 사항입니다.",
	"addr2":    "상세 주소는 필수 입력 사항입니다.",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return v
}

// fieldErrors maps validation failures to one message per JSON field.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out[field] = requiredMessages[field]
		case "email":
			out[field] = "이메일 형식이 올바르지 않습니다."
		default:
			out[field] = fieldMessages[field]
		}
	}
	return out
}
