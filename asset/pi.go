package asset

// DefaultBitmapYAML is the π glyph drawn by the animator
// '#' is the brightest level, 'A'..'Z' step down one level per letter, anything else is background
const DefaultBitmapYAML = `
name: pi
levels: 4
rows:
  - "........................................."
  - "........................................."
  - "....CBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBC..."
  - "..CBB################################B..."
  - "..B######A##A##A##A##A##A##A##A##A###B..."
  - "..B##################################B..."
  - "..B###BBBBBB####BBBBBBBBB####BBBBBBBBC..."
  - "..CBBBC....B####B.......B####B..........."
  - "...........B####B.......B####B..........."
  - "...........B####B.......B####B..........."
  - "...........B####B.......B####B..........."
  - "...........B####B.......B####B..........."
  - "...........B####B.......B####B..........."
  - "...........B####B.......B####BCBBBC......"
  - "...........B####B.......B####BB###B......"
  - "...........B####B.......B#########B......"
  - "...........B####B.......CBB#######B......"
  - "...........B####B.........B#####BBC......"
  - "...........CBBBBC.........CBBBBBC........"
  - "........................................."
  - "........................................."
`
