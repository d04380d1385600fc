package progression

const ReleaseScript = releaseScript
