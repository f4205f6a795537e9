package main

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zooyer/dxfwriter/writer"
)

func newBuildCmd() *cobra.Command {
	var (
		output string
		binary bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "build [drawing.toml]",
		Short: "读取 TOML 图形描述并写出 DXF",
		Long: `读取 TOML 图形描述并写出 DXF。

未给出描述文件时弹出文件选择框；未给出 --output 时，桌面模式下弹出保存对话框，
否则写到描述文件同目录下的同名 .dxf 文件。`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			var input string
			if len(args) > 0 {
				input = args[0]
			} else {
				desktop = true
				file, err := zenity.SelectFile(
					zenity.Title("选择图形描述"),
					zenity.FileFilter{Name: "TOML", Patterns: []string{"*.toml"}, CaseFold: true},
				)
				if err != nil {
					return errors.Wrap(err, "select drawing")
				}
				input = file
			}

			var d drawing
			md, err := toml.DecodeFile(input, &d)
			if err != nil {
				return errors.Wrapf(err, "read %s", input)
			}
			doc, err := d.document(md)
			if err != nil {
				return errors.Wrapf(err, "load %s", input)
			}
			if keys := md.Undecoded(); len(keys) > 0 {
				logger.Warn("unknown keys", "keys", keys)
			}

			opts := d.Writer
			if cmd.Flags().Changed("binary") {
				opts.Binary = binary
			}
			if cmd.Flags().Changed("strict") {
				opts.Strict = strict
			}
			opts.Logger = logger

			if output == "" {
				output = strings.TrimSuffix(input, filepath.Ext(input)) + ".dxf"
				if desktop {
					if output, err = zenity.SelectFileSave(
						zenity.Title("保存 DXF"),
						zenity.Filename(output),
						zenity.ConfirmOverwrite(),
						zenity.FileFilter{Name: "DXF", Patterns: []string{"*.dxf"}, CaseFold: true},
					); err != nil {
						return errors.Wrap(err, "select output")
					}
				}
			}

			logger.Debug("build", "input", input, "output", output, "version", doc.Header.Version, "binary", opts.Binary)
			res, err := writer.WriteFile(output, doc, opts)
			if err != nil {
				logger.Error("write failed", "file", output, "err", err)
				return err
			}
			logger.Info("written", "file", output, "version", res.Version, "entities", res.Entities, "skipped", len(res.Issues))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "输出文件")
	cmd.Flags().BoolVar(&binary, "binary", false, "写出二进制 DXF，覆盖 [writer] 中的设置")
	cmd.Flags().BoolVar(&strict, "strict", false, "存在无法写出的实体时中止，覆盖 [writer] 中的设置")
	return cmd
}
