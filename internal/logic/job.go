package logic

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/pkg/polyalpha"
)

// job is a configured cipher, the key, and the direction to apply it in.
type job struct {
	cipher  *polyalpha.Cipher
	key     string
	decrypt bool
}

func newJob(cfg *config.Config) (job, error) {
	opts, err := cipherOptions(cfg)
	if err != nil {
		return job{}, err
	}

	key, err := readKey(cfg)
	if err != nil {
		return job{}, err
	}

	return job{
		cipher:  polyalpha.New(opts...),
		key:     key,
		decrypt: cfg.Mode == config.ModeDecrypt,
	}, nil
}

// cipherOptions translates the configuration into cipher options.
func cipherOptions(cfg *config.Config) ([]polyalpha.Option, error) {
	strategy, err := polyalpha.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	policy, err := polyalpha.ParsePolicy(cfg.OnInvalid)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	opts := []polyalpha.Option{polyalpha.WithStrategy(strategy), polyalpha.WithPolicy(policy)}

	if cfg.Alphabet != "" {
		alphabet, err := polyalpha.NewAlphabet(cfg.Alphabet)
		if err != nil {
			return nil, fmt.Errorf("alphabet: %w", err)
		}

		opts = append(opts, polyalpha.WithAlphabet(alphabet))
	}

	return opts, nil
}

// readKey returns --key, or the contents of --key-file without its trailing line break.
func readKey(cfg *config.Config) (string, error) {
	if cfg.Key.File == "" {
		return cfg.Key.String, nil
	}

	data, err := os.ReadFile(cfg.Key.File)
	if err != nil {
		return "", fmt.Errorf("reading key file: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

func (j job) transform(text string) (string, error) {
	if j.decrypt {
		return j.cipher.Decrypt(text, j.key) //nolint:wrapcheck
	}

	return j.cipher.Encrypt(text, j.key) //nolint:wrapcheck
}

// stream transforms all of r and writes the result, newline terminated, to w.
func (j job) stream(r io.Reader, w io.Writer) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	output, err := j.transform(string(input))
	if err != nil {
		return err
	}

	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}

	if _, err := io.WriteString(w, output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
