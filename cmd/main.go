package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/zooyer/dxfwriter/core"
	"github.com/zooyer/dxfwriter/entities"
	"github.com/zooyer/golib/xos"
)

// 通过对话框选择文件时由桌面双击启动，退出前暂停以便查看输出
var desktop bool

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "dxfwriter",
		Short:        "按 TOML 图形描述生成 DXF 文件",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newVersionsCmd())
	root.AddCommand(newTypesCmd())
	return root
}

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "列出可写出的 DXF 版本",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, v := range core.Versions() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v, v.Release())
			}
		},
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "列出 [[entity]] 中可用的实体类型",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := entities.Names()
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	if desktop {
		xos.PauseExit()
	}
	if err != nil {
		os.Exit(1)
	}
}
