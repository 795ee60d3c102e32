package cli

import (
	"io"
	"os"

	"github.com/arthur-debert/filestate/pkg/errors"
	"github.com/spf13/cobra"
)

// contentFlags are shared by apply and check
type contentFlags struct {
	path        string
	content     string
	contentFile string
}

func (f *contentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "path", "", MsgFlagPath)
	cmd.Flags().StringVar(&f.content, "content", "", MsgFlagContent)
	cmd.Flags().StringVar(&f.contentFile, "content-file", "", MsgFlagContentFile)
	_ = cmd.MarkFlagRequired("path")
}

// resolve returns the desired content. An explicitly empty --content is
// valid and means an empty file.
func (f *contentFlags) resolve(cmd *cobra.Command) (string, error) {
	hasContent := cmd.Flags().Changed("content")
	hasFile := cmd.Flags().Changed("content-file")

	switch {
	case hasContent && hasFile:
		return "", errors.New(errors.ErrInvalidInput, MsgErrContentBoth)
	case hasContent:
		return f.content, nil
	case !hasFile:
		return "", errors.New(errors.ErrInvalidInput, MsgErrContentRequired)
	}

	var (
		data []byte
		err  error
	)
	if f.contentFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(f.contentFile)
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to read content file %s", f.contentFile).
			WithDetail("contentFile", f.contentFile)
	}
	return string(data), nil
}
