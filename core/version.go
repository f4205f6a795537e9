package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version DXF 格式版本，数值即 $ACADVER 中 AC 之后的数字
type Version int

const (
	AC1009 Version = 1009 // R12
	AC1012 Version = 1012 // R13
	AC1014 Version = 1014 // R14
	AC1015 Version = 1015 // 2000
	AC1018 Version = 1018 // 2004
	AC1021 Version = 1021 // 2007
	AC1024 Version = 1024 // 2010
	AC1027 Version = 1027 // 2013
	AC1032 Version = 1032 // 2018
)

const (
	// MinVersion 支持写出的最低版本
	MinVersion = AC1015
	// UnicodeVersion 起字符串按 UTF-8 原样写出，之前需要转义
	UnicodeVersion = AC1021
)

var releases = map[Version]string{
	AC1009: "R12",
	AC1012: "R13",
	AC1014: "R14",
	AC1015: "2000",
	AC1018: "2004",
	AC1021: "2007",
	AC1024: "2010",
	AC1027: "2013",
	AC1032: "2018",
}

// Versions 返回所有可写出的版本，从低到高
func Versions() []Version {
	return []Version{AC1015, AC1018, AC1021, AC1024, AC1027, AC1032}
}

func (v Version) String() string { return fmt.Sprintf("AC%d", int(v)) }

// Release 对应的 AutoCAD 发布名
func (v Version) Release() string {
	if r, ok := releases[v]; ok {
		return r
	}
	return "unknown"
}

// Supported 是否可被写出
func (v Version) Supported() bool {
	_, ok := releases[v]
	return ok && v >= MinVersion
}

// AtLeast v >= o
func (v Version) AtLeast(o Version) bool { return v >= o }

// ParseVersion 接受 "AC1027"、"1027" 或发布名 "2013"、"R2013"
func ParseVersion(s string) (Version, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for v, r := range releases {
		if s == r || s == "R"+r {
			return v, nil
		}
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "AC"))
	if err != nil {
		return 0, errors.Errorf("invalid dxf version %q", s)
	}
	v := Version(n)
	if _, ok := releases[v]; !ok {
		return 0, errors.Errorf("unknown dxf version %q", s)
	}
	return v, nil
}
