package develop

// Version is reported alongside each developed frame.
const Version = "rawdev 0.3.0 (fixed-point RGGB pipeline)"
