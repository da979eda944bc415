// Package llm 提供文本生成提供商客户端
package llm

import (
	apperrors "thelight-api/pkg/errors"
)

func errUnavailable(keyName string) *apperrors.AppError {
	return apperrors.New(apperrors.CodeProviderUnavailable, keyName+" API key not configured")
}

func errNoContent(display string) *apperrors.AppError {
	return apperrors.New(apperrors.CodeEmptyCompletion, "No content received from "+display)
}

func errAllModelsFailed(display string) *apperrors.AppError {
	return apperrors.New(apperrors.CodeLLMCallFailed, "All "+display+" models failed")
}
