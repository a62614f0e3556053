package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/support/fileutil"
	"github.com/osuushi/support/natural"
	"github.com/osuushi/support/uriutil"
)

func (c *cli) fileCommands(app *kingpin.Application) []command {
	sortCmd := app.Command("sort", "Sort lines from stdin in natural order.")
	sortFiles := sortCmd.Flag("files", "Compare as file names, base name before extension.").Bool()

	list := app.Command("ls", "List a directory in natural order.")
	listDir := list.Arg("dir", "Directory.").Default(".").ExistingDir()
	listExt := list.Flag("ext", "Only regular files with this extension.").String()
	listDirs := list.Flag("dirs", "Only directories.").Bool()

	md5 := app.Command("md5", "MD5 digest of a file as lowercase hex.")
	md5Path := md5.Arg("file", "File to hash.").Required().ExistingFile()
	md5Min := md5.Flag("min-length", "Left pad the digest with zeros to this length.").Default("32").Int()

	sanitize := app.Command("sanitize", "Turn text into a usable file name.")
	sanitizeName := sanitize.Arg("name", "Proposed name.").Required().String()
	sanitizeExt := sanitize.Flag("ext", "Required extension, without the dot.").String()

	cat := app.Command("cat", "Print a text file decoded from a charset.")
	catPath := cat.Arg("file", "Text file.").Required().ExistingFile()
	catCharset := cat.Flag("charset", "Charset label, such as gbk or shift_jis.").Default("utf-8").String()

	info := app.Command("info", "Name, size and type of the content behind a file or http(s) URI.")
	infoURI := info.Arg("uri", "URI or path.").Required().String()

	fetch := app.Command("fetch", "Copy the content behind a file or http(s) URI to a file.")
	fetchURI := fetch.Arg("uri", "URI or path.").Required().String()
	fetchDst := fetch.Arg("dst", "Target file.").Required().String()

	return []command{
		{sortCmd, func() error {
			var lines []string
			scanner := bufio.NewScanner(c.in)
			for scanner.Scan() {
				lines = append(lines, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "read stdin")
			}
			if *sortFiles {
				natural.SortFiles(lines)
			} else {
				natural.SortDirectories(lines)
			}
			for _, line := range lines {
				c.printf("%s\n", line)
			}
			return nil
		}},
		{list, func() error {
			var filter fileutil.Filter
			switch {
			case *listDirs:
				filter = fileutil.DirectoryFilter{}
			case *listExt != "":
				filter = fileutil.FileFilter{Extension: *listExt}
			}
			paths, err := fileutil.List(*listDir, filter)
			if err != nil {
				return err
			}
			for _, p := range paths {
				c.printf("%s\n", p)
			}
			return nil
		}},
		{md5, func() error {
			sum, err := fileutil.MD5(*md5Path, *md5Min)
			if err != nil {
				return err
			}
			c.printf("%s\n", sum)
			return nil
		}},
		{sanitize, func() error {
			name, report := fileutil.SanitizeName(*sanitizeName, *sanitizeExt)
			c.printf("%s\n", c.au.Green(name))
			if report.IllegalRemoved {
				c.printf("%s\n", c.au.Yellow("removed illegal characters"))
			}
			if report.Truncated {
				c.printf("%s\n", c.au.Yellow("truncated"))
			}
			return nil
		}},
		{cat, func() error {
			text, err := fileutil.ReadString(*catPath, *catCharset)
			if err != nil {
				return err
			}
			c.printf("%s", text)
			return nil
		}},
		{info, func() error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			i, err := uriutil.Query(ctx, *infoURI)
			if err != nil {
				return err
			}
			c.printf("name: %s\nsize: %d\ntype: %s\n", c.au.Green(i.Name), i.Size, i.Type)
			return nil
		}},
		{fetch, func() error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return uriutil.CopyToFile(ctx, *fetchURI, *fetchDst)
		}},
	}
}
