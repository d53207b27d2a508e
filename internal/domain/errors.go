package domain

import "errors"

var (
	ErrInvalidEvent   = errors.New("invalid event structure")
	ErrRecordTooLarge = errors.New("record exceeds DynamoDB 400 KB item limit")
)
