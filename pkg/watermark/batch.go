package watermark

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"photowatermark/pkg/log"
)

// OutputSuffix is appended to the source directory name to form the output
// directory name.
const OutputSuffix = "_watermark"

var errEmptyText = errors.New("empty watermark text")

// Result summarises a run.
type Result struct {
	OutputDir string
	// Attempted counts every image file the run tried to process.
	Attempted int
	Written   int
	Skipped   int
	Failures  []*FileError
}

// Processor stamps watermarks onto the files named by a Config.
type Processor struct {
	cfg      Config
	color    color.NRGBA
	dates    DateSource
	texts    *TextResolver
	renderer *Renderer
	logger   log.Logger
	getwd    func() (string, error)
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger used by the processor and the components it
// builds.
func WithLogger(l log.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithDateSource replaces the EXIF capture date lookup.
func WithDateSource(src DateSource) Option {
	return func(p *Processor) {
		p.dates = src
	}
}

// WithWorkingDir overrides how the current working directory is found when
// an output directory has to be derived from it.
func WithWorkingDir(getwd func() (string, error)) Option {
	return func(p *Processor) {
		p.getwd = getwd
	}
}

// NewProcessor validates cfg and prepares a Processor. Errors wrap
// ErrInvalidConfig.
func NewProcessor(cfg Config, opts ...Option) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := ParseHexColor(cfg.FontColor)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		cfg:    cfg,
		color:  c,
		logger: log.NewNoopLogger(),
		getwd:  os.Getwd,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.dates == nil {
		p.dates = NewExifDateResolver(p.logger)
	}
	p.texts = NewTextResolver(p.dates, p.logger)
	p.renderer, err = NewRenderer(cfg.FontPath, p.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: load font: %v", ErrInvalidConfig, err)
	}
	return p, nil
}

// Run processes the configured input. Per-file failures are recorded in the
// Result and never stop the run; only a missing input or an unusable
// single-file target returns an error.
func (p *Processor) Run() (Result, error) {
	files, srcDir, err := p.collect()
	if err != nil {
		return Result{}, err
	}
	if len(files) == 0 {
		p.logger.Info("no image files found", log.String("dir", srcDir))
		return Result{}, nil
	}

	outDir, err := OutputDirFor(srcDir, p.getwd)
	if err != nil {
		return Result{}, err
	}
	if err := EnsureOutputDir(outDir, p.logger); err != nil {
		return Result{}, err
	}

	res := Result{OutputDir: outDir}
	for _, path := range files {
		res.Attempted++
		err := p.processFile(path, outDir)
		switch {
		case err == nil:
			res.Written++
		case errors.Is(err, errEmptyText):
			res.Skipped++
			p.logger.Warn("no watermark text, skipping file", log.String("path", path))
		default:
			fe := &FileError{Path: path, Err: err}
			res.Failures = append(res.Failures, fe)
			p.logger.Warn("failed to process file", log.String("path", path), log.Err(err))
		}
	}

	p.logger.Info("watermark run complete",
		log.Int("attempted", res.Attempted),
		log.Int("written", res.Written),
		log.Int("failed", len(res.Failures)),
		log.String("output_dir", outDir))
	return res, nil
}

// collect classifies the input path and returns the image files to process
// together with the directory the output directory is derived from.
func (p *Processor) collect() ([]string, string, error) {
	in := filepath.Clean(p.cfg.InputPath)
	info, err := os.Stat(in)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() || !IsImageName(in) {
			return nil, "", fmt.Errorf("%w: %s is not an image file", ErrInvalidInput, in)
		}
		p.logger.Info("processing single file", log.String("path", in))
		dir := filepath.Dir(in)
		if dir == "." {
			if dir, err = p.getwd(); err != nil {
				return nil, "", err
			}
		}
		return []string{in}, dir, nil
	}

	p.logger.Info("processing directory", log.String("dir", in))
	entries, err := os.ReadDir(in)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	var files []string
	for _, e := range entries {
		path := filepath.Join(in, e.Name())
		if !IsImageName(e.Name()) || !isRegularFile(e, path) {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, in, nil
}

func (p *Processor) processFile(path, outDir string) error {
	img, format, err := openImage(path)
	if err != nil {
		return err
	}

	text := p.texts.Resolve(path)
	if text == "" {
		return errEmptyText
	}

	if _, err := p.renderer.Render(img, text, p.cfg.FontSize, p.color, p.cfg.Anchor); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	out := filepath.Join(outDir, filepath.Base(path))
	if err := saveImage(img, out, format, p.cfg.JPEGQuality); err != nil {
		return err
	}
	p.logger.Info("watermark written", log.String("path", out), log.String("text", text))
	return nil
}

// OutputDirFor derives the output directory for images found in dir: a
// sibling named <dir>_watermark. When dir has no parent the directory is
// placed under the working directory reported by getwd instead.
func OutputDirFor(dir string, getwd func() (string, error)) (string, error) {
	clean := filepath.Clean(dir)
	name := filepath.Base(clean)
	parent := filepath.Dir(clean)
	if parent == "." || parent == clean {
		if name == string(filepath.Separator) || name == "." {
			name = ""
		}
		wd, err := getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		return filepath.Join(wd, name+OutputSuffix), nil
	}
	return filepath.Join(parent, name+OutputSuffix), nil
}

// EnsureOutputDir creates dir and any missing parents. An existing directory
// is left untouched.
func EnsureOutputDir(dir string, logger log.Logger) error {
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output path %s exists and is not a directory", dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	logger.Info("created output directory", log.String("dir", dir))
	return nil
}

// isRegularFile follows symlinks so linked images are processed like plain
// files.
func isRegularFile(e os.DirEntry, path string) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
