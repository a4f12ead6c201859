package driver_test

import (
	"log"
	"time"

	"github.com/rs/zerolog"

	"github.com/samisabik/flipdot/internal/driver"
	"github.com/samisabik/flipdot/internal/hanover"
	"github.com/samisabik/flipdot/internal/link"
)

func Example() {
	ch, err := link.OpenSerial("/dev/ttyUSB0", 4800)
	if err != nil {
		log.Fatal(err)
	}
	defer ch.Close()

	sign, err := driver.New(ch, &driver.Opts{
		Address:    2,
		Height:     7,
		Width:      84,
		Baud:       4800,
		Margin:     30 * time.Millisecond,
		ScrollStep: 1,
	}, zerolog.Nop())
	if err != nil {
		log.Fatal(err)
	}

	f := hanover.NewFrame(7, 84)
	for x := 0; x < 84; x++ {
		f.Set(x, 3, true)
	}
	if err := sign.Display(f, true); err != nil {
		log.Fatal(err)
	}
}
