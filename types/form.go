package types

import "strconv"

const (
	yes = "yes"
	no  = "no"
)

func yesNo(b bool) string {
	if b {
		return yes
	}
	return no
}

func oneZero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func itoa(i int64) string {
	return strconv.FormatInt(i, 10)
}
