package huffman

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Result summarises one encoding run.
type Result struct {
	InputBytes  int
	Freqs       Frequencies
	Codes       CodeTable
	CodeBits    uint64
	PaddingBits uint8
	OutputBytes int64
}

type options struct {
	log    *logrus.Logger
	report io.Writer
}

// Option configures Encode and EncodeFile.
type Option func(*options)

// WithLogger routes progress messages to log.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithReport prints the frequency and code tables to w once the codes are
// known. The report never affects the encoded bytes.
func WithReport(w io.Writer) Option {
	return func(o *options) {
		o.report = w
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logrus.New()
		o.log.SetOutput(ioutil.Discard)
	}
	return o
}

// prepare runs the counter, the tree builder and the code generator.
func prepare(data []byte, o *options) (*Result, error) {
	freqs := CountFrequencies(data)
	o.log.Debugf("[Encode]Counted %d distinct symbols in %d bytes\n", len(freqs), len(data))
	root, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	codes, err := GenerateCodes(root)
	if err != nil {
		return nil, err
	}
	res := &Result{InputBytes: len(data), Freqs: freqs, Codes: codes}
	if o.report != nil {
		if err := WriteReport(o.report, res); err != nil {
			o.log.Warnf("[Encode]Write report ERR:%s\n", err)
		}
	}
	return res, nil
}

func pack(w io.Writer, data []byte, res *Result) error {
	stats, err := Pack(w, data, res.Codes)
	if err != nil {
		return err
	}
	res.CodeBits = stats.CodeBits
	res.PaddingBits = stats.PaddingBits
	res.OutputBytes = stats.Bytes
	return nil
}

// Encode encodes data held in memory and writes the packed bits to w.
func Encode(data []byte, w io.Writer, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	res, err := prepare(data, o)
	if err != nil {
		return nil, err
	}
	if err := pack(w, data, res); err != nil {
		return nil, err
	}
	return res, nil
}

// EncodeFile reads src in full, encodes it and writes the result to dst.
// dst is only created once the code table exists, so a source that cannot
// be encoded leaves no output file behind.
func EncodeFile(src, dst string, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	data, err := readSource(src)
	if err != nil {
		return nil, err
	}
	o.log.Infof("[Encode]Read %d bytes from %s\n", len(data), src)
	res, err := prepare(data, o)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", src)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "create destination %s", dst)
	}
	defer f.Close()
	if err := pack(f, data, res); err != nil {
		return nil, errors.Wrapf(err, "write destination %s", dst)
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrapf(err, "close destination %s", dst)
	}
	o.log.Infof("[Encode]Encoded text written to %s: %d bytes, %d code bits, %d padding bits\n",
		dst, res.OutputBytes, res.CodeBits, res.PaddingBits)
	return res, nil
}

func readSource(src string) ([]byte, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, errors.Wrapf(err, "read source %s", src)
	}
	defer f.Close()
	data, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read source %s", src)
	}
	return data, nil
}
