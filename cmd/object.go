package cmd

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	keyFlag      string
	prefixFlag   string
	outputFlag   string
	responseFlag bool
)

// uploadCmd uploads a local file, or stdin when the path is "-"
var uploadCmd = &cobra.Command{
	Use:   "upload <bucket> <path|->",
	Short: "Upload a file or stdin",
	Long: `Uploads a local file (or stdin when the path is "-") and reports the elapsed time.
Without --key the object is stored under --prefix followed by a random UUID.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, src := args[0], args[1]
		key := objectKey(keyFlag, prefixFlag, src)

		svc, logg, err := connect()
		if err != nil {
			return err
		}
		defer logg.Sync()

		start := time.Now()
		var size uint64
		if src == "-" {
			counter := &countingReader{r: cmd.InOrStdin()}
			err = svc.UploadObject(cmd.Context(), bucket, counter, key)
			size = counter.n
		} else {
			var info os.FileInfo
			if info, err = os.Stat(src); err != nil {
				return err
			}
			size = uint64(info.Size())
			err = svc.UploadFile(cmd.Context(), bucket, src, key)
		}
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		logg.Info("Upload complete",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.String("size", humanize.Bytes(size)),
			zap.Duration("elapsed", elapsed),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s/s\t%s\n", key, humanize.Bytes(size), throughput(size, elapsed), elapsed)
		return nil
	},
}

// downloadCmd fetches an object to a file or stdout
var downloadCmd = &cobra.Command{
	Use:   "download <bucket> <key>",
	Short: "Download an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := connect()
		if err != nil {
			return err
		}
		defer logg.Sync()

		r, err := svc.DownloadObject(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		var n int64
		if outputFlag != "" {
			n, err = writeFile(outputFlag, r)
		} else {
			n, err = io.Copy(cmd.OutOrStdout(), r)
		}
		if err != nil {
			return err
		}
		logg.Debug("Download complete", zap.String("key", args[1]), zap.String("size", humanize.Bytes(uint64(n))))
		return nil
	},
}

// lsCmd lists objects directly under a prefix
var lsCmd = &cobra.Command{
	Use:   "ls <bucket> [prefix]",
	Short: "List objects directly under a prefix (not recursive)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 2 {
			prefix = args[1]
		}

		svc, logg, err := connect()
		if err != nil {
			return err
		}
		defer logg.Sync()

		keys, err := svc.ListObjects(cmd.Context(), args[0], prefix)
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}

// rmCmd deletes one object
var rmCmd = &cobra.Command{
	Use:   "rm <bucket> <key>",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := connect()
		if err != nil {
			return err
		}
		defer logg.Sync()

		result, err := svc.DeleteObject(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if responseFlag {
			for _, key := range result.Deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "deleted\t%s\n", key)
			}
			for _, e := range result.Errors {
				fmt.Fprintf(cmd.OutOrStdout(), "error\t%s\t%v\n", e.ObjectName, e.Err)
			}
		}
		return nil
	},
}

// urlCmd prints a presigned download URL
var urlCmd = &cobra.Command{
	Use:   "url <bucket> <key>",
	Short: "Print a presigned download URL valid for one hour",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := connect()
		if err != nil {
			return err
		}
		defer logg.Sync()

		u, err := svc.PresignURL(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

// writeFile copies r into a new file at name. A partially written file is
// removed when the copy fails.
func writeFile(name string, r io.Reader) (int64, error) {
	f, err := os.Create(name)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return n, fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("failed to close %s: %w", name, err)
	}
	return n, nil
}

// objectKey picks the destination key for an upload.
func objectKey(key, prefix, src string) string {
	if key != "" {
		return key
	}
	name := uuid.NewString()
	if src != "-" {
		name += filepath.Ext(src)
	}
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func throughput(size uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return humanize.Bytes(size)
	}
	return humanize.Bytes(uint64(float64(size) / elapsed.Seconds()))
}

type countingReader struct {
	r io.Reader
	n uint64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += uint64(n)
	return n, err
}

func init() {
	uploadCmd.Flags().StringVar(&keyFlag, "key", "", "Destination object key")
	uploadCmd.Flags().StringVar(&prefixFlag, "prefix", "", "Key prefix used when --key is not set")
	downloadCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write to file instead of stdout")
	rmCmd.Flags().BoolVar(&responseFlag, "response", false, "Print the delete response")

	RootCmd.AddCommand(uploadCmd)
	RootCmd.AddCommand(downloadCmd)
	RootCmd.AddCommand(lsCmd)
	RootCmd.AddCommand(rmCmd)
	RootCmd.AddCommand(urlCmd)
}
