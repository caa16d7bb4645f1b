// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidBudget is returned when a value cannot be read as an amount.
var ErrInvalidBudget = errors.New("invalid budget, expected a number")

var budgetNoise = strings.NewReplacer("$", "", ",", "", " ", "")

// ParseBudget reads a budget typed by a person: "2500", "2,500" and
// "$2,500.50" are all accepted. An empty string yields nil.
func ParseBudget(s string) (*float64, error) {
	s = budgetNoise.Replace(s)
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(b) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBudget, s)
	}
	return &b, nil
}
