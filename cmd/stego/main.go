// Command stego hides a text message in the low-order bits of a PNG or BMP
// image, optionally transforming it with a classical cipher first, and
// recovers messages hidden the same way.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/hiddenink/stego"
	"github.com/hiddenink/stego/cipher"
	"github.com/hiddenink/stego/prefs"
)

var (
	in      = flag.String("in", "", "input image (png or bmp)")
	out     = flag.String("out", "", "output image for -embed (png or bmp)")
	doEmbed = flag.Bool("embed", false, "hide a message in the input image")
	doExtr  = flag.Bool("extract", false, "recover a message from the input image")

	msg        = flag.String("msg", "", "message to hide")
	cipherName = flag.String("cipher", "", `cipher name: "", Caesar, Hill, Scytale or Vigenère`)
	key        = flag.String("key", "", "cipher key")
	seed       = flag.String("seed", "", "PRNG seed for the pixel visitation order")
	lsb        = flag.String("lsb", "1,1,1", "payload bits per channel as r,g,b, each 0..8")
	brute      = flag.Bool("brute", false, "try every channel/depth plan when extracting")

	prefsPath = flag.String("prefs", "", "preferences database (optional)")
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	flag.Parse()
	if err := run(context.Background()); err != nil {
		log.Fatalf("Error: %s", err)
	}
}

func run(ctx context.Context) error {
	if *doEmbed == *doExtr {
		return errors.New("specify exactly one of -embed and -extract")
	}
	if *in == "" {
		return errors.New("-in is required")
	}
	if *doEmbed && *out == "" {
		return errors.New("-out is required with -embed")
	}

	if *prefsPath != "" {
		store, err := prefs.Open(*prefsPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if !flagSet("brute") {
			if v, err := store.Get(prefs.KeyBrute); err == nil && v == "1" {
				*brute = true
			}
		} else if *doExtr {
			value := "0"
			if *brute {
				value = "1"
			}
			if err := store.Set(prefs.KeyBrute, value); err != nil {
				return err
			}
		}
	}

	src, err := loadImage(*in)
	if err != nil {
		return err
	}

	c, err := cipher.New(*cipherName, *key)
	if err != nil {
		return err
	}

	if *doEmbed {
		return runEmbed(ctx, src, c)
	}
	return runExtract(ctx, src, c)
}

func runEmbed(ctx context.Context, src image.Image, c cipher.Cipher) error {
	if *msg == "" {
		return errors.New("nothing to hide: -msg is empty")
	}
	if r, bad := cipher.NonMember(*msg); bad {
		return fmt.Errorf("message contains a non-printable character: %q", r)
	}

	plan, err := parsePlan(*lsb)
	if err != nil {
		return err
	}

	text := c.Encrypt(*msg)

	pixels := src.Bounds().Dx() * src.Bounds().Dy()
	if limit := stego.Capacity(pixels, plan); len(text) > limit {
		return fmt.Errorf("message needs %d characters, plan holds %d", len(text), limit)
	}
	if strings.Contains(text, stego.Delimiter) {
		log.Println("Warning: message contains the delimiter; data after it will be lost on extraction")
	}

	dst, err := stego.Embed(ctx, src, text, plan, stego.WithSeed(*seed))
	if err != nil {
		return err
	}
	if err := saveImage(*out, dst); err != nil {
		return err
	}
	log.Printf("Encoded %d characters into %s", len(text), *out)
	return nil
}

func runExtract(ctx context.Context, src image.Image, c cipher.Cipher) error {
	var (
		text string
		err  error
	)
	if *brute {
		text, err = stego.ExtractBruteForce(ctx, src, stego.WithSeed(*seed))
	} else {
		var plan stego.Plan
		if plan, err = parsePlan(*lsb); err != nil {
			return err
		}
		text, err = stego.Extract(ctx, src, plan, stego.WithSeed(*seed))
	}
	if err != nil {
		return err
	}
	if _, bad := cipher.NonMember(text); bad {
		log.Println("Warning: extracted data contains non-printable characters; was this image encoded with stego?")
	}
	fmt.Println(c.Decrypt(text))
	return nil
}

func parsePlan(spec string) (stego.Plan, error) {
	parts := strings.Split(spec, ",")
	depths := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad -lsb value %q: %w", spec, err)
		}
		depths[i] = d
	}
	return stego.PlanFromDepths(depths...)
}

func loadImage(path string) (image.Image, error) {
	if err := checkExtension(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if pixels := src.Bounds().Dx() * src.Bounds().Dy(); pixels < stego.MinPixels {
		return nil, fmt.Errorf("need minimum %d pixels, %s has %d", stego.MinPixels, path, pixels)
	}
	return src, nil
}

func saveImage(path string, img image.Image) error {
	if err := checkExtension(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return bmp.Encode(f, img)
	}
	return png.Encode(f, img)
}

// checkExtension enforces the lossless formats the payload survives.
func checkExtension(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp":
		return nil
	}
	return fmt.Errorf("not a valid extension: %q (want .png or .bmp)", filepath.Ext(path))
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
