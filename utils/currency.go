package utils

import (
	"strconv"
	"strings"
)

// FormatRupees formats whole rupees with Indian digit grouping.
// Example: 125000 -> "₹1,25,000"
func FormatRupees(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	// last three digits form one group, the rest are grouped in pairs
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return sign + "₹" + strings.Join(groups, ",")
}
