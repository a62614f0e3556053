package main

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/support/accounts"
	"github.com/osuushi/support/animation"
	"github.com/osuushi/support/charutil"
	"github.com/osuushi/support/display"
	"github.com/osuushi/support/idutil"
	"github.com/osuushi/support/mcc"
)

func (c *cli) miscCommands(app *kingpin.Application) []command {
	mccCmd := app.Command("mcc", "ISO 3166 country of a mobile country code.")
	mccCode := mccCmd.Arg("code", "Mobile country code. Defaults to $"+mcc.EnvVar+".").Int()

	dip := app.Command("dip", "Convert density-independent pixels to pixels.")
	dipValue := dip.Arg("dip", "Value in dip.").Required().Float64()
	dipDensity := dip.Flag("density", "Screen density. Defaults to $"+display.EnvVar+", then 1.").Float64()

	chars := app.Command("chars", "Classify every character of a text by Unicode block.")
	charsText := chars.Arg("text", "Text to classify.").Required().String()

	id := app.Command("id", "Random 64-bit identifier, optionally folded with text.")
	idLeast := id.Flag("least", "Use the least significant half of the UUID.").Bool()
	idSeed := id.Flag("seed", "Start from this id instead of a random one.").Int64()
	idFold := id.Flag("fold", "Fold this text into the id.").Strings()

	account := app.Command("account", "Typed user data in a YAML account file.")
	accountStore := account.Flag("store", "Account file.").Required().String()
	accountGet := account.Command("get", "Print a value.")
	accountGetKey := accountGet.Arg("key", "Key.").Required().String()
	accountGetDefault := accountGet.Flag("default", "Printed when the key is missing.").String()
	accountSet := account.Command("set", "Store a value.")
	accountSetKey := accountSet.Arg("key", "Key.").Required().String()
	accountSetValue := accountSet.Arg("value", "Value.").Required().String()

	animate := app.Command("animate", "Draw a progress bar driven by an animation.")
	animateDuration := animate.Flag("duration", "Animation length.").Default("1s").Duration()
	animateDelay := animate.Flag("delay", "Wait before starting.").Duration()
	animateInterpolator := animate.Flag("interpolator", "Timing curve.").Default("accelerate").Enum("linear", "accelerate", "decelerate")
	animateWidth := animate.Flag("width", "Bar width in characters.").Default("40").Int()

	return []command{
		{mccCmd, func() error {
			code := *mccCode
			if code == 0 {
				var err error
				if code, err = mcc.FromEnv(); err != nil {
					return err
				}
			}
			iso, ok := mcc.ISO3166(code)
			if !ok {
				return errors.Errorf("no country for mcc %d", code)
			}
			name, _ := mcc.Country(code)
			c.printf("%s %s\n", c.au.Green(iso), name)
			return nil
		}},
		{dip, func() error {
			metrics := display.Metrics{Density: *dipDensity}
			if !(metrics.Density > 0) {
				var err error
				if metrics, err = display.FromEnv(); err != nil {
					return err
				}
			}
			c.printf("dimension: %g\nsize: %d\noffset: %d\n",
				display.Dimension(metrics, *dipValue),
				display.DimensionPixelSize(metrics, *dipValue),
				display.DimensionPixelOffset(metrics, *dipValue))
			return nil
		}},
		{chars, func() error {
			for _, r := range *charsText {
				var tags []string
				if charutil.IsChinese(r) {
					tags = append(tags, "chinese")
				}
				if charutil.IsCJK(r) {
					tags = append(tags, "cjk")
				}
				if charutil.IsGeneralPunctuation(r) {
					tags = append(tags, "general-punctuation")
				}
				if charutil.IsHalfwidthAndFullwidthForms(r) {
					tags = append(tags, "halfwidth-fullwidth")
				}
				c.printf("%q %U %s\n", r, r, strings.Join(tags, ","))
			}
			return nil
		}},
		{id, func() error {
			value := *idSeed
			if value == 0 {
				value = idutil.Random(*idLeast)
			}
			for _, text := range *idFold {
				value = idutil.AddTo(value, text)
			}
			c.printf("%d\n", value)
			return nil
		}},
		{accountGet, func() error {
			store, err := accounts.OpenFileStore(*accountStore)
			if err != nil {
				return err
			}
			c.printf("%s\n", accounts.New(store).String(*accountGetKey, *accountGetDefault))
			return nil
		}},
		{accountSet, func() error {
			store, err := accounts.OpenFileStore(*accountStore)
			if err != nil {
				return err
			}
			return accounts.New(store).SetString(*accountSetKey, *accountSetValue)
		}},
		{animate, func() error {
			var interpolator animation.Interpolator
			switch *animateInterpolator {
			case "linear":
				interpolator = animation.Linear
			case "decelerate":
				interpolator = animation.Decelerate{}
			default:
				interpolator = animation.Accelerate{}
			}
			return c.runAnimation(*animateDuration, *animateDelay, interpolator, *animateWidth)
		}},
	}
}

func (c *cli) runAnimation(duration, delay time.Duration, interpolator animation.Interpolator, width int) error {
	if width < 1 {
		width = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bar := func(fraction float64) {
		filled := int(fraction * float64(width))
		c.printf("\r[%s%s] %3.0f%%",
			c.au.Cyan(strings.Repeat("#", filled)), strings.Repeat(" ", width-filled), fraction*100)
	}
	driver := animation.NewDriver(animation.Callbacks{
		OnStart:   bar,
		OnAnimate: bar,
		OnStop: func(fraction float64) {
			bar(fraction)
			c.printf("\n")
			cancel()
		},
	})
	driver.SetDuration(duration)
	driver.SetInterpolator(interpolator)

	scheduler := animation.NewTickerScheduler(0, nil)
	driver.Attach(scheduler)
	driver.StartDelayed(delay)
	if err := scheduler.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
