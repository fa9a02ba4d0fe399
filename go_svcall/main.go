package main

import (
	"svcall/go_svcall/pkg"
)

func main() {
	svcall.FullSvcall()
}
