package custom

// CAPNP_STD is the std directory of capnproto.org/go/capnp/v3, which holds go.capnp.
//go:generate capnp compile -I$CAPNP_STD -ogo controlsd.capnp
