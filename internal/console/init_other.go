//go:build !windows

package console

func Init() {}
