package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	CustomerNameMaxLen    = 100
	CustomerAddressMaxLen = 255
)

type Customer struct {
	ID      uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"size:100;not null"`
	Address string `json:"address" gorm:"size:255;not null"`
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return required("name")
	}
	if utf8.RuneCountInString(c.Name) > CustomerNameMaxLen {
		return tooLong("name", CustomerNameMaxLen)
	}
	if strings.TrimSpace(c.Address) == "" {
		return required("address")
	}
	if utf8.RuneCountInString(c.Address) > CustomerAddressMaxLen {
		return tooLong("address", CustomerAddressMaxLen)
	}
	return nil
}
