package main

import (
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/go-redis/redis/v7"
	"github.com/pkg/errors"
	lzf "github.com/zhuyie/golzf"
)

type inputOptions struct {
	Path      string
	RedisAddr string
	RedisKey  string
	LZFSize   int
}

func noopRelease() error {
	return nil
}

// readInput returns the buffer to decode and a function releasing it.
func readInput(opts inputOptions, stdin io.Reader) ([]byte, func() error, error) {
	data, release, err := openInput(opts, stdin)

	if err != nil {
		return nil, nil, err
	}

	if opts.LZFSize <= 0 {
		return data, release, nil
	}

	buf, err := decompressLZF(data, opts.LZFSize)

	if releaseErr := release(); err == nil {
		err = releaseErr
	}

	if err != nil {
		return nil, nil, err
	}

	return buf, noopRelease, nil
}

func openInput(opts inputOptions, stdin io.Reader) ([]byte, func() error, error) {
	if opts.RedisKey != "" {
		data, err := readRedisKey(opts.RedisAddr, opts.RedisKey)
		return data, noopRelease, err
	}

	if opts.Path != "" {
		return mapFile(opts.Path)
	}

	data, err := io.ReadAll(stdin)

	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read stdin")
	}

	return data, noopRelease, nil
}

func mapFile(path string) ([]byte, func() error, error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, nil, err
	}

	// The mapping stays valid after the file is closed
	defer file.Close()

	stat, err := file.Stat()

	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to stat input")
	}

	// Empty files cannot be mapped
	if stat.Size() == 0 {
		return []byte{}, noopRelease, nil
	}

	m, err := mmap.Map(file, mmap.RDONLY, 0)

	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to map %s", path)
	}

	return m, m.Unmap, nil
}

func readRedisKey(addr, key string) ([]byte, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	defer client.Close()

	data, err := client.Get(key).Bytes()

	if err == redis.Nil {
		return nil, KeyNotFoundError{Key: key}
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to get redis key %q", key)
	}

	return data, nil
}

func decompressLZF(data []byte, size int) ([]byte, error) {
	buf := make([]byte, size)
	n, err := lzf.Decompress(data, buf)

	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress LZF")
	}

	return buf[:n], nil
}
