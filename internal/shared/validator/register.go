package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// engine pulls the validator instance out of gin's binding layer.
func engine() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll installs the shared custom binding tags. Runs once at startup,
// before any route binds a request.
func RegisterAll() error {
	v, err := engine()
	if err != nil {
		return err
	}

	if err := v.RegisterValidation("phone", ValidatePhone); err != nil {
		return fmt.Errorf("phone validator 등록 실패: %w", err)
	}

	slog.Info("공통 Validator 등록 완료", "validators", "phone")
	return nil
}
