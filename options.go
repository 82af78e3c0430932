package wyag

import (
	"github.com/klauspost/compress/zlib"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	DefaultBranch      = "master"
	DefaultDescription = "Unnamed repository; edit this file 'description' to name the repository.\n"
)

// Options configures how a repository is opened, located or initialized.
type Options struct {
	Fs               afero.Fs
	Logger           *zap.Logger
	DefaultBranch    string
	Description      string
	CompressionLevel int
	Resolver         Resolver
}

// Option is a functional option for Open, Locate and Initialize.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Fs:               afero.NewOsFs(),
		Logger:           zap.NewNop(),
		DefaultBranch:    DefaultBranch,
		Description:      DefaultDescription,
		CompressionLevel: zlib.DefaultCompression,
		Resolver:         IdentityResolver{},
	}
}

func buildOptions(opts []Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithFs sets the filesystem the repository lives on.
func WithFs(fs afero.Fs) Option {
	return func(o *Options) {
		if fs != nil {
			o.Fs = fs
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithDefaultBranch sets the branch HEAD points to in a new repository.
func WithDefaultBranch(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.DefaultBranch = name
		}
	}
}

// WithDescription sets the content of the description file of a new repository.
func WithDescription(text string) Option {
	return func(o *Options) { o.Description = text }
}

// WithCompressionLevel sets the zlib level used when writing objects.
func WithCompressionLevel(level int) Option {
	return func(o *Options) { o.CompressionLevel = level }
}

// WithResolver replaces the name resolver used by FindObject.
func WithResolver(r Resolver) Option {
	return func(o *Options) {
		if r != nil {
			o.Resolver = r
		}
	}
}
