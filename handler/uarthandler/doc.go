// Package uarthandler transmits log lines over a serial port using the
// periph.io stack.
//
// The port is resolved through uartreg, so anything the host driver
// registry knows about (hardware UARTs, USB adapters) can serve as a
// sink. Construction initializes the periph host drivers and connects
// the port at the configured baud rate with 8N1 framing; Handle then
// transmits each composed line as one write.
package uarthandler
