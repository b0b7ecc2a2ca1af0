package sentiment

var defaultNegators = []string{
	"not", "no", "never", "neither", "nor", "cannot", "without", "hardly",
}

var defaultIntensifiers = map[string]float64{
	"absolutely":    1.5,
	"very":          1.3,
	"extremely":     1.5,
	"really":        1.2,
	"highly":        1.3,
	"incredibly":    1.5,
	"truly":         1.2,
	"so":            1.2,
	"too":           1.2,
	"deeply":        1.3,
	"hugely":        1.4,
	"sharply":       1.3,
	"significantly": 1.3,
	"totally":       1.4,
	"most":          1.3,
	"somewhat":      0.7,
	"slightly":      0.6,
	"marginally":    0.6,
	"fairly":        0.8,
	"rather":        0.8,
	"barely":        0.5,
}

// defaultWords mixes general opinion words with the vocabulary of market news.
var defaultWords = map[string]Entry{
	// general positive
	"love":        {0.5, 0.6},
	"loved":       {0.7, 0.8},
	"loves":       {0.5, 0.6},
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"excellent":   {1.0, 1.0},
	"amazing":     {0.6, 0.9},
	"awesome":     {1.0, 1.0},
	"wonderful":   {1.0, 1.0},
	"fantastic":   {0.4, 0.9},
	"best":        {1.0, 0.3},
	"better":      {0.5, 0.5},
	"nice":        {0.6, 1.0},
	"happy":       {0.8, 1.0},
	"glad":        {0.5, 1.0},
	"pleased":     {0.5, 1.0},
	"impressive":  {1.0, 1.0},
	"remarkable":  {0.75, 0.75},
	"solid":       {0.3, 0.4},
	"healthy":     {0.5, 0.5},
	"successful":  {0.75, 0.95},
	"success":     {0.3, 0.5},
	"win":         {0.8, 0.4},
	"wins":        {0.8, 0.4},
	"winning":     {0.5, 0.75},
	"favorable":   {0.4, 0.5},
	"favourable":  {0.4, 0.5},
	"optimistic":  {0.5, 0.8},
	"confident":   {0.5, 0.8},
	"confidence":  {0.3, 0.5},
	"promising":   {0.4, 0.7},
	"exciting":    {0.3, 0.8},
	"innovative":  {0.5, 0.7},
	"robust":      {0.4, 0.5},
	"resilient":   {0.4, 0.5},
	"stable":      {0.2, 0.4},
	"safe":        {0.5, 0.5},
	"attractive":  {0.5, 0.8},
	"bright":      {0.7, 0.7},
	"easy":        {0.4, 0.8},
	"fun":         {0.3, 0.2},
	"right":       {0.3, 0.5},
	"true":        {0.35, 0.65},
	"perfect":     {1.0, 1.0},
	"superb":      {1.0, 1.0},
	"outstanding": {0.5, 0.8},
	"beautiful":   {0.85, 1.0},
	"enjoy":       {0.4, 0.5},
	"recommend":   {0.3, 0.4},

	// general negative
	"bad":            {-0.7, 0.67},
	"worse":          {-0.4, 0.6},
	"worst":          {-1.0, 1.0},
	"terrible":       {-1.0, 1.0},
	"horrible":       {-1.0, 1.0},
	"awful":          {-1.0, 1.0},
	"poor":           {-0.4, 0.6},
	"disaster":       {-0.7, 0.8},
	"disastrous":     {-0.9, 0.9},
	"catastrophic":   {-0.9, 0.9},
	"hate":           {-0.8, 0.9},
	"sad":            {-0.5, 1.0},
	"angry":          {-0.5, 1.0},
	"afraid":         {-0.6, 0.9},
	"fear":           {-0.5, 0.7},
	"fears":          {-0.5, 0.7},
	"worried":        {-0.4, 0.8},
	"worry":          {-0.4, 0.7},
	"worries":        {-0.4, 0.7},
	"painful":        {-0.7, 0.9},
	"wrong":          {-0.5, 0.9},
	"ugly":           {-0.7, 1.0},
	"dangerous":      {-0.6, 0.9},
	"risky":          {-0.4, 0.6},
	"uncertain":      {-0.2, 0.6},
	"uncertainty":    {-0.2, 0.5},
	"disappointing":  {-0.6, 0.7},
	"disappointed":   {-0.75, 0.75},
	"disappointment": {-0.6, 0.7},
	"failure":        {-0.5, 0.5},
	"failed":         {-0.5, 0.3},
	"fails":          {-0.5, 0.3},
	"problem":        {-0.3, 0.4},
	"problems":       {-0.3, 0.4},
	"trouble":        {-0.4, 0.6},
	"troubled":       {-0.5, 0.7},
	"difficult":      {-0.5, 1.0},
	"hard":           {-0.3, 0.5},
	"serious":        {-0.3, 0.7},
	"severe":         {-0.5, 0.7},
	"crisis":         {-0.6, 0.6},
	"chaos":          {-0.6, 0.7},
	"scandal":        {-0.7, 0.7},
	"lawsuit":        {-0.4, 0.4},
	"shame":          {-0.6, 0.8},
	"useless":        {-0.5, 0.2},
	"weak":           {-0.4, 0.6},
	"weakness":       {-0.4, 0.5},
	"dull":           {-0.3, 0.6},
	"boring":         {-1.0, 1.0},

	// market positive
	"bullish":       {0.7, 0.7},
	"rally":         {0.6, 0.5},
	"rallies":       {0.6, 0.5},
	"rallied":       {0.6, 0.5},
	"surge":         {0.6, 0.5},
	"surges":        {0.6, 0.5},
	"surged":        {0.6, 0.5},
	"soar":          {0.7, 0.5},
	"soars":         {0.7, 0.5},
	"soared":        {0.7, 0.5},
	"jump":          {0.4, 0.3},
	"jumps":         {0.4, 0.3},
	"jumped":        {0.4, 0.3},
	"gain":          {0.4, 0.3},
	"gains":         {0.4, 0.3},
	"gained":        {0.4, 0.3},
	"rise":          {0.3, 0.2},
	"rises":         {0.3, 0.2},
	"rose":          {0.3, 0.2},
	"climb":         {0.3, 0.2},
	"climbs":        {0.3, 0.2},
	"climbed":       {0.3, 0.2},
	"upbeat":        {0.5, 0.6},
	"upgrade":       {0.6, 0.4},
	"upgraded":      {0.6, 0.4},
	"outperform":    {0.6, 0.4},
	"outperforms":   {0.6, 0.4},
	"beat":          {0.5, 0.3},
	"beats":         {0.5, 0.3},
	"exceed":        {0.5, 0.3},
	"exceeds":       {0.5, 0.3},
	"exceeded":      {0.5, 0.3},
	"growth":        {0.4, 0.3},
	"growing":       {0.3, 0.3},
	"grow":          {0.3, 0.3},
	"profit":        {0.3, 0.2},
	"profits":       {0.3, 0.2},
	"profitable":    {0.5, 0.4},
	"record":        {0.2, 0.3},
	"recovery":      {0.5, 0.4},
	"recover":       {0.4, 0.4},
	"rebound":       {0.5, 0.4},
	"rebounds":      {0.5, 0.4},
	"breakout":      {0.6, 0.5},
	"boost":         {0.5, 0.4},
	"boosts":        {0.5, 0.4},
	"boosted":       {0.5, 0.4},
	"strong":        {0.43, 0.73},
	"stronger":      {0.45, 0.7},
	"strength":      {0.4, 0.5},
	"dividend":      {0.3, 0.2},
	"buy":           {0.3, 0.3},
	"accumulate":    {0.4, 0.3},
	"expansion":     {0.4, 0.3},
	"expand":        {0.3, 0.3},
	"momentum":      {0.3, 0.4},
	"opportunity":   {0.4, 0.5},
	"opportunities": {0.4, 0.5},
	"lucrative":     {0.6, 0.6},
	"milestone":     {0.4, 0.4},
	"breakthrough":  {0.6, 0.6},

	// market negative
	"bearish":       {-0.7, 0.7},
	"crash":         {-0.8, 0.6},
	"crashes":       {-0.8, 0.6},
	"crashed":       {-0.8, 0.6},
	"plunge":        {-0.7, 0.5},
	"plunges":       {-0.7, 0.5},
	"plunged":       {-0.7, 0.5},
	"tumble":        {-0.6, 0.5},
	"tumbles":       {-0.6, 0.5},
	"tumbled":       {-0.6, 0.5},
	"slump":         {-0.6, 0.5},
	"slumps":        {-0.6, 0.5},
	"slumped":       {-0.6, 0.5},
	"sink":          {-0.5, 0.4},
	"sinks":         {-0.5, 0.4},
	"sank":          {-0.5, 0.4},
	"drop":          {-0.3, 0.2},
	"drops":         {-0.3, 0.2},
	"dropped":       {-0.3, 0.2},
	"fall":          {-0.3, 0.2},
	"falls":         {-0.3, 0.2},
	"fell":          {-0.3, 0.2},
	"decline":       {-0.4, 0.3},
	"declines":      {-0.4, 0.3},
	"declined":      {-0.4, 0.3},
	"downgrade":     {-0.6, 0.4},
	"downgraded":    {-0.6, 0.4},
	"underperform":  {-0.6, 0.4},
	"selloff":       {-0.7, 0.5},
	"sell-off":      {-0.7, 0.5},
	"loss":          {-0.4, 0.3},
	"losses":        {-0.4, 0.3},
	"lose":          {-0.4, 0.3},
	"losing":        {-0.4, 0.4},
	"lost":          {-0.4, 0.3},
	"miss":          {-0.4, 0.3},
	"misses":        {-0.4, 0.3},
	"missed":        {-0.4, 0.3},
	"recession":     {-0.6, 0.5},
	"default":       {-0.6, 0.4},
	"bankruptcy":    {-0.8, 0.5},
	"bankrupt":      {-0.8, 0.5},
	"fraud":         {-0.8, 0.7},
	"scam":          {-0.8, 0.8},
	"investigation": {-0.4, 0.3},
	"probe":         {-0.4, 0.3},
	"layoffs":       {-0.5, 0.4},
	"cuts":          {-0.3, 0.3},
	"warning":       {-0.4, 0.4},
	"warns":         {-0.4, 0.4},
	"concern":       {-0.3, 0.5},
	"concerns":      {-0.3, 0.5},
	"volatile":      {-0.3, 0.5},
	"volatility":    {-0.2, 0.4},
	"downturn":      {-0.5, 0.4},
	"slowdown":      {-0.4, 0.4},
	"headwinds":     {-0.4, 0.4},
	"overvalued":    {-0.4, 0.6},
	"sell":          {-0.3, 0.3},
	"risk":          {-0.2, 0.4},
	"risks":         {-0.2, 0.4},
	"threat":        {-0.4, 0.5},
	"inflation":     {-0.2, 0.3},
	"debt":          {-0.2, 0.2},
}
