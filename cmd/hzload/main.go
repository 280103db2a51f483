// Command hzload identifies and loads a guest executable, reporting the
// resolved format, the load outcome and any registered resource
// archives. Optionally mounts a host directory and lists it the way the
// guest would see it.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/horizon-emu/horizon/config"
	"github.com/horizon-emu/horizon/filesys"
	"github.com/horizon-emu/horizon/loader"
	"github.com/horizon-emu/horizon/logging"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(12)
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func main() {
	var (
		file       = flag.String("file", "", "Path to the guest executable")
		configPath = flag.String("config", "", "Path to a TOML config file")
		filter     = flag.String("filter", "", "Log filter, e.g. \"*:Warning Service.FS:Debug\"")
		root       = flag.String("root", "", "Host directory to mount and list as a guest archive")
	)
	flag.Parse()

	if *file == "" && *root == "" {
		fmt.Fprintln(os.Stderr, "Usage: hzload -file <executable> [-config horizon.toml] [-filter spec]")
		fmt.Fprintln(os.Stderr, "       hzload -root <dir>  (list a mounted directory)")
		os.Exit(1)
	}

	if err := run(*file, *configPath, *filter, *root); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

func run(file, configPath, filter, root string) error {
	opts := filesys.Options{}
	logFilter := filter

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		opts, err = cfg.ArchiveOptions()
		if err != nil {
			return err
		}
		if logFilter == "" {
			logFilter = cfg.Logging.Filter
		}
		if root == "" {
			root = cfg.Storage.MountPoint
		}
	}

	logs := logging.NewRegistry()
	if logFilter != "" {
		logs.ParseFilter(logFilter)
	}

	env := loader.Env{
		FS:       afero.NewOsFs(),
		Archives: filesys.NewRegistry(logs.Get(logging.ServiceFS)),
		Log:      logs,
	}

	if file != "" {
		if err := loadReport(env, file); err != nil {
			return err
		}
	}
	if root != "" {
		if err := listMount(env, root, opts, logs); err != nil {
			return err
		}
	}
	return nil
}

func loadReport(env loader.Env, file string) error {
	fmt.Println(titleStyle.Render("Load " + file))

	contentType := loader.IdentifyPath(env, file)
	extensionType := loader.GuessFromExtension(filepath.Ext(file))
	fmt.Println(labelStyle.Render("Content:") + contentType.String())
	fmt.Println(labelStyle.Render("Extension:") + extensionType.String())

	status := loader.LoadFile(env, file)
	rendered := okStyle.Render(status.String())
	if status != loader.ResultSuccess {
		rendered = failStyle.Render(status.String())
	}
	fmt.Println(labelStyle.Render("Status:") + rendered)

	for _, id := range env.Archives.IDs() {
		factory, _ := env.Archives.Lookup(id)
		fmt.Println(labelStyle.Render("Archive:") +
			fmt.Sprintf("%s (id %d)", factory.GetName(), id))
	}

	if status != loader.ResultSuccess {
		return fmt.Errorf("load failed: %s", status)
	}
	return nil
}

func listMount(env loader.Env, root string, opts filesys.Options, logs *logging.Registry) error {
	archive := filesys.NewDiskArchive(env.FS, root, opts, logs.Get(logging.ServiceFS))

	dir, ok := archive.OpenDirectory("/")
	if !ok {
		return fmt.Errorf("%s is not a directory", root)
	}
	defer dir.Close()

	fmt.Println(titleStyle.Render("Mount " + archive.GetName()))

	entries := make([]filesys.Entry, 16)
	for {
		n := dir.Read(entries)
		if n == 0 {
			break
		}
		for _, e := range entries[:n] {
			attrs := "----"
			b := []byte(attrs)
			if e.IsDirectory {
				b[0] = 'd'
			}
			if e.IsHidden {
				b[1] = 'h'
			}
			if e.IsArchive {
				b[2] = 'a'
			}
			if e.IsReadOnly {
				b[3] = 'r'
			}
			short := string(e.ShortName[:8]) + "." + string(e.Extension[:3])
			fmt.Printf("%s %10d  %-14s %s\n",
				dimStyle.Render(string(b)), e.FileSize,
				dimStyle.Render(short), e.FilenameString())
		}
	}
	return nil
}
